/*
Package splitmap converts 16-bit grayscale heightmaps into two-channel
8-bit rasters ready for downstream BC5 block compression.
*/
package splitmap

import "log"

type SplitMap struct {
	db     *ConvertDB
	logger *log.Logger
}

// New returns a converter. db may be nil, in which case no conversion
// manifest is consulted or written.
func New(db *ConvertDB, logger *log.Logger) *SplitMap {
	return &SplitMap{
		db:     db,
		logger: logger,
	}
}
