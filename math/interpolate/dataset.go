package interpolate

// DataSet is one dependent variable tabulated at every point of a grid. Values
// are ordered with the first axis varying slowest and the last axis fastest.
type DataSet struct {
	Name string
	Values []float64
}

// NewDataSet creates a named data set. values is not copied until the data
// set is added to a RegularGrid.
func NewDataSet(values []float64, name string) DataSet {
	return DataSet{ Name: name, Values: values }
}

func (ds DataSet) Len() int { return len(ds.Values) }

func (ds DataSet) clone() DataSet {
	vals := make([]float64, len(ds.Values))
	copy(vals, ds.Values)
	return DataSet{ Name: ds.Name, Values: vals }
}
