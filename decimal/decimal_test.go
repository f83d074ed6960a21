package decimal

import "testing"

func TestAddSubMulMod(t *testing.T) {
	a := FromInt64(7)
	b := FromInt64(3)

	if got := Add(a, b).String(); got != "10" {
		t.Errorf("Add(7,3) = %s, want 10", got)
	}
	if got := Sub(a, b).String(); got != "4" {
		t.Errorf("Sub(7,3) = %s, want 4", got)
	}
	if got := Mul(a, b).String(); got != "21" {
		t.Errorf("Mul(7,3) = %s, want 21", got)
	}
	if got := Mod(a, b).String(); got != "1" {
		t.Errorf("Mod(7,3) = %s, want 1", got)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	cases := map[string]string{
		"0.5": "0",
		"1.5": "2",
		"2.5": "2",
		"3.5": "4",
	}
	for in, want := range cases {
		d, ok := Parse(in)
		if !ok {
			t.Fatalf("Parse(%s) failed", in)
		}
		if got := d.Round().String(); got != want {
			t.Errorf("Round(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestFloorCeilTrunc(t *testing.T) {
	d, _ := Parse("-1.5")
	if got := d.Floor().String(); got != "-2" {
		t.Errorf("Floor(-1.5) = %s, want -2", got)
	}
	if got := d.Ceil().String(); got != "-1" {
		t.Errorf("Ceil(-1.5) = %s, want -1", got)
	}
	if got := d.Trunc().String(); got != "-1" {
		t.Errorf("Trunc(-1.5) = %s, want -1", got)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 9223372036854775807} {
		d := FromInt64(v)
		got, ok := d.Int64()
		if !ok || got != v {
			t.Errorf("FromInt64(%d).Int64() = (%d, %v), want (%d, true)", v, got, ok, v)
		}
	}
}

func TestAbs(t *testing.T) {
	d := FromInt64(-42)
	if got := d.Abs().String(); got != "42" {
		t.Errorf("Abs(-42) = %s, want 42", got)
	}
}

func TestSqrtPow(t *testing.T) {
	four := FromInt64(4)
	if got := four.Sqrt().String(); got != "2" {
		t.Errorf("Sqrt(4) = %s, want 2", got)
	}
	two := FromInt64(2)
	ten := FromInt64(10)
	if got := two.Pow(ten).String(); got != "1024" {
		t.Errorf("Pow(2,10) = %s, want 1024", got)
	}
}
