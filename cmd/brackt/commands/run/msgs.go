package run

// Message constants
const (
	MsgShort = "Scan a directory for exposure-bracketed sequences"
	MsgLong  = `The 'run' command scans a directory (non-recursively) for RAW files whose
exposure-bias metadata matches a bracket sequence, then acts on each match:

  move      move the matched files into a folder named after the first file
  textfile  append the matched file paths to sequences.txt in the directory

Comparison modes:
  absolute  each file's bias must equal the sequence value at its position
  delta     biases are compared relative to the file at the sequence's zero
            entry, so a bracket shifted by a constant EV offset still matches

Defaults for the sequence, mode, action and extensions come from the config
file and can be overridden per run with flags.`

	MsgExample = `  # Scan with defaults from config (delta mode, move matched runs)
  brackt run ~/photos/2026-08-23

  # Match an exact sequence and record matches instead of moving files
  brackt run --sequence '0/10, -20/10, 20/10' --mode absolute --action textfile ~/photos/shoot

  # Include files regardless of exposure mode
  brackt run --bracket-only=false ~/photos/shoot`
)
