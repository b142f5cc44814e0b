package catalog

import "github.com/magabrotheeeer/research-portal/internal/models"

const (
	cellIncluded    = "Included"
	cellNotIncluded = "Not included"
)

// Column столбец таблицы сравнения — один план.
type Column struct {
	PlanID  string               `json:"plan_id"`
	Name    string               `json:"name"`
	Price   float64              `json:"price"`
	Period  models.BillingPeriod `json:"period"`
	Popular bool                 `json:"popular"`
}

// Row строка таблицы сравнения. Cells идут в порядке Columns.
type Row struct {
	Label string   `json:"label"`
	Hint  string   `json:"hint,omitempty"`
	Cells []string `json:"cells"`
}

// Comparison таблица сравнения планов.
type Comparison struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Compare строит таблицу сравнения из возможностей планов.
//
// Одна строка на каждое уникальное значение Row (или Name, если Row пуст)
// в порядке первого появления. Ячейка — Value возможности, иначе
// "Included"/"Not included" по флагу; если у плана нет такой строки — "Not included".
func Compare(plans ...models.SubscriptionPlan) Comparison {
	cmp := Comparison{
		Columns: make([]Column, 0, len(plans)),
		Rows:    make([]Row, 0),
	}

	index := make(map[string]int)
	for col, p := range plans {
		cmp.Columns = append(cmp.Columns, Column{
			PlanID:  p.ID,
			Name:    p.Name,
			Price:   p.Price,
			Period:  p.Period,
			Popular: p.Popular,
		})

		for _, f := range p.Features {
			label := f.Row
			if label == "" {
				label = f.Name
			}
			i, ok := index[label]
			if !ok {
				i = len(cmp.Rows)
				index[label] = i
				cells := make([]string, len(plans))
				for j := range cells {
					cells[j] = cellNotIncluded
				}
				cmp.Rows = append(cmp.Rows, Row{Label: label, Cells: cells})
			}
			row := &cmp.Rows[i]
			if row.Hint == "" {
				row.Hint = f.RowHint
			}
			row.Cells[col] = cellValue(f)
		}
	}
	return cmp
}

func cellValue(f models.PlanFeature) string {
	switch {
	case f.Value != "":
		return f.Value
	case f.Included:
		return cellIncluded
	default:
		return cellNotIncluded
	}
}
