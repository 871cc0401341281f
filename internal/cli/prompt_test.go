package cli

import (
	"reflect"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		n       int
		want    []int
		wantErr bool
	}{
		{name: "empty", in: "", n: 3},
		{name: "none", in: "None", n: 3},
		{name: "all", in: "all", n: 3, want: []int{0, 1, 2}},
		{name: "list", in: "1, 3", n: 3, want: []int{0, 2}},
		{name: "duplicates", in: "2,2", n: 3, want: []int{1}},
		{name: "zero", in: "0", n: 3, wantErr: true},
		{name: "too big", in: "4", n: 3, wantErr: true},
		{name: "word", in: "first", n: 3, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSelection(tc.in, tc.n)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
