// Package dataset provides the in-memory table that the rest of tabproc
// operates on.
//
// A Dataset is an ordered collection of named, equally sized columns. Each
// column is a Series: a tagged union over numeric, text, datetime and boolean
// storage with per-cell missing-value tracking. Cleaning operations mutate
// the Dataset in place but always build the complete replacement column set
// before swapping it in, so a Dataset is never observed partially updated.
//
// Example usage:
//
//	age, _ := dataset.NewNumeric("age", []float64{30, 25, 35}, nil)
//	name, _ := dataset.NewText("name", []string{"alice", "bob", "charlie"}, nil)
//	ds, err := dataset.New(age, name)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	removed := ds.DropMissing()
package dataset
