package phases

import "testing"

func TestAllOrderedByNum(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("expected %d phases, got %d", Count, len(all))
	}
	for i, ph := range all {
		if ph.Num != i+1 {
			t.Fatalf("phase at index %d has num %d", i, ph.Num)
		}
		if ph.Title == "" || ph.ShortDescription == "" {
			t.Fatalf("phase %d missing title or description", ph.Num)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Title = "mutated"
	if b := All(); b[0].Title == "mutated" {
		t.Fatalf("All must not expose the internal catalog")
	}
}

func TestByNumBounds(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		ph, ok := ByNum(n)
		if !ok || ph.Num != n {
			t.Fatalf("ByNum(%d) = %+v, %v", n, ph, ok)
		}
	}
	for _, n := range []int{0, -1, 7, 100} {
		if _, ok := ByNum(n); ok {
			t.Fatalf("ByNum(%d) should be out of range", n)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	cases := map[Status]string{
		StatusPending: "pending",
		StatusRunning: "running",
		StatusSuccess: "success",
		StatusError:   "error",
	}
	for st, want := range cases {
		if got := st.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", st, got, want)
		}
	}
	if Status(99).String() != "unknown" {
		t.Fatalf("out-of-range status should stringify as unknown")
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusRunning.Terminal() {
		t.Fatalf("pending/running must not be terminal")
	}
	if !StatusSuccess.Terminal() || !StatusError.Terminal() {
		t.Fatalf("success/error must be terminal")
	}
}
