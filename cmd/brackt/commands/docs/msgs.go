package docs

// Message constants
const (
	MsgShort = "Read built-in documentation topics"
	MsgLong  = `The 'docs' command renders brackt's built-in documentation in the
terminal. Run it without arguments to list the available topics.`

	MsgExample = `  # List topics
  brackt docs

  # Read about exposure bracketing
  brackt docs bracketing

  # Read about the two matching modes
  brackt docs matching`
)
