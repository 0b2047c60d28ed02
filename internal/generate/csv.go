package generate

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

// timestampLayout matches the historical-data import format used by
// downstream converters: "2020.01.01 00:00:00.000".
const timestampLayout = "2006.01.02 15:04:05.000"

// WriteCSV drains the series into a CSV file at path, one line per tick,
// no header. Returns the number of rows written.
func WriteCSV(path string, s *Series) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := WriteTicks(f, s)
	if err != nil {
		return n, err
	}
	return n, f.Sync()
}

// WriteTicks streams the remainder of the series to w as CSV rows with
// fields timestamp,bid,ask,bidVolume,askVolume.
func WriteTicks(w io.Writer, s *Series) (int, error) {
	cw := csv.NewWriter(w)

	digits := s.Config().Digits
	n := 0
	for {
		t, ok := s.Next()
		if !ok {
			break
		}
		row := []string{
			fmtTimestamp(t.Timestamp),
			fmtPrice(t.Bid, digits),
			fmtPrice(t.Ask, digits),
			fmtPrice(t.BidVolume, digits),
			fmtPrice(t.AskVolume, digits),
		}
		if err := cw.Write(row); err != nil {
			return n, err
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

func fmtTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func fmtPrice(x float64, digits int) string {
	return strconv.FormatFloat(x, 'f', digits, 64)
}
