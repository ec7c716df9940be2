package model

import "testing"

func TestExpenseMonth(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "full date", date: "2024-03-15", want: "2024-03"},
		{name: "exact month length", date: "2024-03", want: "2024-03"},
		{name: "short value passed through", date: "2024", want: "2024"},
		{name: "empty", date: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expense{Date: tt.date}.Month()
			if got != tt.want {
				t.Errorf("Month() = %q, want %q", got, tt.want)
			}
		})
	}
}
