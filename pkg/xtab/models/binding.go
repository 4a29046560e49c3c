package models

// ComputedColumn is a column binding declared on the crosstab by the report designer.
type ComputedColumn struct {
	Name              string   `json:"name" yaml:"name"`
	Expression        string   `json:"expression" yaml:"expression"`
	DataType          string   `json:"data_type,omitempty" yaml:"dataType,omitempty"`
	AggregateFunction string   `json:"aggregate_function,omitempty" yaml:"aggregateFunction,omitempty"`
	Filter            string   `json:"filter,omitempty" yaml:"filter,omitempty"`
	Arguments         []string `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	// AggregateOn lists the full names ("dimension/level") of the base levels to aggregate on.
	AggregateOn []string `json:"aggregate_on,omitempty" yaml:"aggregateOn,omitempty"`
}

// Binding is a query binding ready for the cube query.
type Binding struct {
	Name              string   `json:"name"`
	Expression        string   `json:"expression"`
	DataType          string   `json:"data_type,omitempty"`
	AggregateFunction string   `json:"aggregate_function,omitempty"`
	Filter            string   `json:"filter,omitempty"`
	Arguments         []string `json:"arguments,omitempty"`
	// AggregateOn holds level expressions in nesting order, outermost first.
	AggregateOn []string `json:"aggregate_on,omitempty"`
}

// AddAggregateOn appends a level expression unless it is already present.
func (b *Binding) AddAggregateOn(expression string) {
	for _, e := range b.AggregateOn {
		if e == expression {
			return
		}
	}
	b.AggregateOn = append(b.AggregateOn, expression)
}
