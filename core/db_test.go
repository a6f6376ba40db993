package core

import "testing"

func TestDBOrdering_String(t *testing.T) {
	tests := []struct {
		name string
		ord  DBOrdering
		want string
	}{
		{name: "descending by default", ord: DBOrdering{Field: "ended_at"}, want: "ended_at DESC"},
		{name: "ascending", ord: DBOrdering{Field: "created_at", Ascending: true}, want: "created_at ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ord.String(); got != tt.want {
				t.Errorf("DBOrdering.String() = %s; want %s", got, tt.want)
			}
		})
	}
}
