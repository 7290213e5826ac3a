package execution

import "testing"

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{
			name: "single case",
			ids:  []string{"MySuite/case_one"},
			want: "MySuite/case_one",
		},
		{
			name: "single suite",
			ids:  []string{"MySuite"},
			want: "MySuite",
		},
		{
			name: "suites before cases",
			ids:  []string{"OtherSuite/other_case", "MySuite"},
			want: "MySuite:OtherSuite/other_case",
		},
		{
			name: "case covered by requested suite is dropped",
			ids:  []string{"MySuite", "MySuite/case_one", "OtherSuite/x"},
			want: "MySuite:OtherSuite/x",
		},
		{
			name: "duplicate suites collapse",
			ids:  []string{"MySuite", "MySuite"},
			want: "MySuite",
		},
		{
			name: "empty request",
			ids:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildFilter(tt.ids); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDiscoveryArgs(t *testing.T) {
	plain := DiscoveryArgs("plain")
	if len(plain) != 3 || plain[2] != "--list_content" {
		t.Errorf("unexpected plain discovery args: %v", plain)
	}

	dot := DiscoveryArgs("dot")
	if len(dot) != 3 || dot[2] != "--list_content=DOT" {
		t.Errorf("unexpected dot discovery args: %v", dot)
	}
}

func TestRunArgs(t *testing.T) {
	all := RunArgs("")
	want := []string{"-x", "no", "-l", "test_suite"}
	if len(all) != len(want) {
		t.Fatalf("expected %v, got %v", want, all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("arg %d: expected %s, got %s", i, want[i], all[i])
		}
	}

	subset := RunArgs("MySuite:OtherSuite/x")
	if len(subset) != 6 || subset[4] != "-t" || subset[5] != "MySuite:OtherSuite/x" {
		t.Errorf("unexpected subset args: %v", subset)
	}
}
