package inspect

// Message constants
const (
	MsgShort = "Show exposure bias and mode for RAW files"
	MsgLong  = `The 'inspect' command reads each file's metadata and reports its exposure
bias (as the exact rational stored by the camera) and exposure mode. Files
without readable metadata are reported, not skipped.

Use --as-sequence to turn an existing bracket's biases into a sequence
string you can pass straight to 'run --sequence'.`

	MsgExample = `  # Tabular report
  brackt inspect ~/photos/shoot/DSC_00*.nef

  # Machine-readable output
  brackt inspect --format yaml ~/photos/shoot/DSC_0001.nef

  # Build a sequence from a known-good bracket
  brackt run --sequence "$(brackt inspect --as-sequence DSC_0001.nef DSC_0002.nef DSC_0003.nef)" ~/photos/shoot`
)
