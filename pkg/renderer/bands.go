package renderer

import "fmt"

// Band is a contiguous range of image rows [StartRow, EndRow) rendered by a single worker.
// Rows are numbered from the bottom of the image.
type Band struct {
	Index    int
	StartRow int
	EndRow   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.EndRow - b.StartRow
}

// String formats the band for logs
func (b Band) String() string {
	return fmt.Sprintf("band %d [%d,%d)", b.Index, b.StartRow, b.EndRow)
}

// PartitionRows splits height rows into equal, non-overlapping bands of bandSize rows
func PartitionRows(height, bandSize int) ([]Band, error) {
	if height < 0 {
		return nil, fmt.Errorf("%w: height must not be negative, got %d", ErrInvalidConfig, height)
	}
	if bandSize <= 0 {
		return nil, fmt.Errorf("%w: band size must be positive, got %d", ErrInvalidConfig, bandSize)
	}
	if height%bandSize != 0 {
		return nil, fmt.Errorf("%w: %d rows cannot be split into bands of %d", ErrInvalidConfig, height, bandSize)
	}

	bands := make([]Band, 0, height/bandSize)
	for start := 0; start < height; start += bandSize {
		bands = append(bands, Band{
			Index:    len(bands),
			StartRow: start,
			EndRow:   start + bandSize,
		})
	}
	return bands, nil
}
