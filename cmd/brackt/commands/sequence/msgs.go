package sequence

// Message constants
const (
	MsgShort = "Generate a bracket sequence string"
	MsgLong  = `The 'sequence' command synthesizes an exposure bias sequence from a step
size, an image count and an ordering policy. Offsets are emitted in tenths
of an EV stop (n/10), which is how cameras store exposure bias in EXIF.

The output is a starting point for 'run --sequence'; edit it freely.`

	MsgExample = `  # Default bracket from config (typically 3 images, 1.0 EV apart)
  brackt sequence

  # 5-image bracket, 0.7 EV apart, in shooting order 0, -, +
  brackt sequence --step 0.7 --images 5 --order zero-minus-plus

  # Same bracket sorted from darkest to brightest
  brackt sequence --step 0.7 --images 5 --order minus-zero-plus`
)
