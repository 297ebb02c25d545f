package finance

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	cases := []struct {
		name string
		in   civil.Date
		n    int
		want civil.Date
	}{
		{"plain", civil.Date{Year: 2024, Month: time.March, Day: 15}, 1, civil.Date{Year: 2024, Month: time.April, Day: 15}},
		{"clamps to leap february", civil.Date{Year: 2024, Month: time.January, Day: 31}, 1, civil.Date{Year: 2024, Month: time.February, Day: 29}},
		{"clamps to february", civil.Date{Year: 2023, Month: time.January, Day: 31}, 1, civil.Date{Year: 2023, Month: time.February, Day: 28}},
		{"crosses year", civil.Date{Year: 2023, Month: time.November, Day: 30}, 3, civil.Date{Year: 2024, Month: time.February, Day: 29}},
		{"backwards", civil.Date{Year: 2024, Month: time.March, Day: 31}, -1, civil.Date{Year: 2024, Month: time.February, Day: 29}},
		{"backwards across year", civil.Date{Year: 2024, Month: time.January, Day: 10}, -13, civil.Date{Year: 2022, Month: time.December, Day: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonths(tc.in, tc.n))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	d := civil.Date{Year: 2024, Month: time.February, Day: 12}

	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 1}, MonthStart(d))
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, MonthEnd(d))
	assert.True(t, SameMonth(d, civil.Date{Year: 2024, Month: time.February, Day: 28}))
	assert.False(t, SameMonth(d, civil.Date{Year: 2023, Month: time.February, Day: 12}))
}
