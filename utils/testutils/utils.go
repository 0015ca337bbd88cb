package testutils

import (
	"reflect"
	"testing"

	"github.com/benoitkugler/layoutng/utils"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// AssertApprox checks geometry values up to a small epsilon.
func AssertApprox(t *testing.T, got, exp utils.Fl) {
	t.Helper()
	if utils.Abs(got-exp) > 1e-3 {
		t.Fatalf("expected %v, got %v", exp, got)
	}
}
