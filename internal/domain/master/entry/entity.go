package entry

import "time"

// Kind names one of the code/name master resources. They share one table layout
// and one implementation.
type Kind string

const (
	KindDepartment          Kind = "department"
	KindDesignation         Kind = "designation"
	KindCategory            Kind = "category"
	KindExtraClassification Kind = "extra_classification"
)

var kindTables = map[Kind]string{
	KindDepartment:          "departments",
	KindDesignation:         "designations",
	KindCategory:            "categories",
	KindExtraClassification: "extra_classifications",
}

var kindLabels = map[Kind]string{
	KindDepartment:          "department",
	KindDesignation:         "designation",
	KindCategory:            "category",
	KindExtraClassification: "extra classification",
}

// Kinds lists every kind in route registration order.
func Kinds() []Kind {
	return []Kind{KindDepartment, KindDesignation, KindCategory, KindExtraClassification}
}

func (k Kind) IsValid() bool {
	_, ok := kindTables[k]
	return ok
}

// Table is the backing table; only known kinds have one, so it is safe to interpolate.
func (k Kind) Table() string {
	return kindTables[k]
}

func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

type Entry struct {
	ID        string
	Kind      Kind
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
