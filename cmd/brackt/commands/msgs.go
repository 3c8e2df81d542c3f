package commands

// Message constants
const (
	MsgRootShort = "Organize exposure-bracketed RAW photos"
	MsgRootLong  = `brackt scans a directory of camera RAW files, reads each file's exposure
bias from its metadata, and finds contiguous runs of files whose exposures
match a bracket sequence. Matched runs can be moved into their own folders
or recorded in a manifest file for later processing (e.g. HDR merging).`
)
