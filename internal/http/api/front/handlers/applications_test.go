package handlers

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	cases := []struct {
		input   string
		want    flexibleID
		wantErr bool
	}{
		{input: `7`, want: 7},
		{input: `"12"`, want: 12},
		{input: `" 3 "`, want: 3},
		{input: `""`, want: 0},
		{input: `null`, want: 0},
		{input: `"abc"`, wantErr: true},
		{input: `-1`, wantErr: true},
		{input: `1.5`, wantErr: true},
		{input: `9223372036854775807`, want: 9223372036854775807},
		{input: `9223372036854775808`, wantErr: true},
		{input: `"18446744073709551615"`, wantErr: true},
	}
	for _, tc := range cases {
		var got flexibleID
		err := json.Unmarshal([]byte(tc.input), &got)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got %d", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.input, got, tc.want)
		}
	}
}
