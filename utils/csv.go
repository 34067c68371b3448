package utils

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
)

// ReadCsvFile reads a whole CSV file into one map per row, keyed by the
// header row. The seed sources are small enough that streaming is not worth
// the complexity.
func ReadCsvFile(filePath string) ([]map[string]string, error) {
	csvFile, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer csvFile.Close()

	reader := csv.NewReader(csvFile)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.Errorf("%s is missing a header row", filePath)
	}

	headers := records[0]
	result := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, value := range record {
			row[headers[i]] = value
		}
		result = append(result, row)
	}

	return result, nil
}
