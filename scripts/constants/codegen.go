package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

type constant struct {
	Name        string
	Num         string
	Den         string
	Description string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "constants", "constants_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of constants
	consts, err := convertDataToConstants(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the constants using a template
	code, err := generateGoCode(filepath.Join("scripts", "constants", "constants_data.tmpl"), consts)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = os.WriteFile("constants_data.go", code, 0o644)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToConstants keeps the order of the CSV file and rejects records
// that would make the generated MustNew calls panic.
func convertDataToConstants(data [][]string) ([]constant, error) {
	consts := []constant{}
	seen := map[string]bool{}
	for i, rec := range data {
		c := constant{
			Name:        rec[0],
			Num:         rec[1],
			Den:         rec[2],
			Description: rec[3],
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return nil, fmt.Errorf("record %d: duplicate name %q", i+1, c.Name)
		}
		seen[key] = true
		if _, err := strconv.ParseInt(c.Num, 10, 64); err != nil {
			return nil, fmt.Errorf("record %d: numerator: %w", i+1, err)
		}
		den, err := strconv.ParseInt(c.Den, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: denominator: %w", i+1, err)
		}
		if den <= 0 {
			return nil, fmt.Errorf("record %d: denominator must be positive", i+1)
		}
		consts = append(consts, c)
	}
	return consts, nil
}

func generateGoCode(filename string, consts []constant) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, consts)
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}
