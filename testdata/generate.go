// Generates the sample data files in this directory. Run manually with
// `go run generate.go` from testdata/.
package main

import (
	"encoding/csv"
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"
)

type User struct {
	ID     int64    `parquet:"id"`
	Name   string   `parquet:"name"`
	Age    int32    `parquet:"age"`
	Active bool     `parquet:"active"`
	Score  *float64 `parquet:"score,optional"`
}

// users carries one duplicate row and one missing score so the cleaning
// operations have work to do.
var users = []User{
	{ID: 1, Name: "alice", Age: 30, Active: true, Score: fptr(95.5)},
	{ID: 2, Name: "bob", Age: 25, Active: false, Score: fptr(82.3)},
	{ID: 3, Name: "charlie", Age: 35, Active: true, Score: nil},
	{ID: 3, Name: "charlie", Age: 35, Active: true, Score: nil},
	{ID: 4, Name: "diana", Age: 28, Active: true, Score: fptr(91.2)},
	{ID: 5, Name: "eve", Age: 42, Active: false, Score: fptr(76.8)},
}

var header = []string{"id", "name", "age", "active", "score"}

var records = [][]string{
	{"1", "alice", "30", "true", "95.5"},
	{"2", "bob", "25", "false", "82.3"},
	{"3", "charlie", "35", "true", ""},
	{"3", "charlie", "35", "true", ""},
	{"4", "diana", "28", "true", "91.2"},
	{"5", "eve", "42", "false", "76.8"},
}

func fptr(v float64) *float64 {
	return &v
}

func main() {
	writeCSV("sample.csv")
	writeParquet("sample.parquet")
	writeExcel("sample.xlsx")
}

func writeCSV(name string) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		log.Fatal(err)
	}
	if err := w.WriteAll(records); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated %s with %d rows", name, len(records))
}

func writeParquet(name string) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[User](file)
	if _, err := writer.Write(users); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated %s with %d rows", name, len(users))
}

func writeExcel(name string) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Data"); err != nil {
		log.Fatal(err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.SetCellValue("Data", cell, title); err != nil {
			log.Fatal(err)
		}
	}
	for row, record := range records {
		for col, value := range record {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				log.Fatal(err)
			}
			if err := f.SetCellValue("Data", cell, value); err != nil {
				log.Fatal(err)
			}
		}
	}

	if err := f.SaveAs(name); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated %s with %d rows", name, len(records))
}
