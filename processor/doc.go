// Package processor ties loading, cleaning, filtering and statistics
// together behind a single facade owning one dataset.
//
// A Processor starts with an empty dataset and replaces it wholesale on a
// successful Load; a failed Load leaves the previous dataset untouched.
// Cleaning mutates the owned dataset in place, filtering never does.
//
// # Basic Usage
//
//	p := processor.New(processor.Config{}, nil)
//	if err := p.Load("data.csv"); err != nil {
//	    log.Fatal(err)
//	}
//	p.Clean()
//
//	cs, err := p.Statistics("value")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean=%.2f std=%.2f\n", cs.Mean, cs.Std)
//
//	rows, err := p.Filter([]filter.Condition{
//	    {Column: "value", Op: filter.OpGreaterThan, Value: 100},
//	})
//
// A Processor is owned by a single caller; methods must not be called
// concurrently.
package processor
