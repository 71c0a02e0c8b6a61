package input

import (
	"bufio"
	"io"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"space", " ", []Key{KeySpace}},
		{"directions any case", "wAsD", []Key{KeyW, KeyA, KeyS, KeyD}},
		{"quit", "q", []Key{KeyQuit}},
		{"ctrl-c", "\x03", []Key{KeyQuit}},
		{"unrecognized ignored", "xyz1\r", nil},
		{"arrow keys skipped", "\x1b[A\x1b[D", nil},
		{"csi with params", "\x1b[1;5Cw", []Key{KeyW}},
		{"bare escape ignored", "\x1bs", []Key{KeyS}},
		{"ss3 arrows skipped", "\x1bOA\x1bODd", []Key{KeyD}},
		{"trailing partial csi dropped", "w\x1b[1;", []Key{KeyW}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeys([]byte(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("ParseKeys(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStreamDeliversKeysAndCloses(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w a")))

	var got []Key
	deadline := time.Now().Add(2 * time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		got = append(got, ReadKeys(s)...)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("expected stream to close at EOF")
	}
	want := []Key{KeyW, KeySpace, KeyA}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestKeyString(t *testing.T) {
	if KeyW.String() != "W" || KeySpace.String() != "space" || Key(42).String() != "none" {
		t.Fatal("unexpected key names")
	}
}

func TestParseKeysSplitSequence(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		second    string
		wantFirst []Key
		wantRest  string
		want      []Key
	}{
		{"escape then csi tail", "\x1b", "[D", nil, "\x1b", nil},
		{"csi prefix then final", "s\x1b[", "Aw", []Key{KeyS}, "\x1b[", []Key{KeyW}},
		{"csi params then final", "\x1b[1;5", "Ca", nil, "\x1b[1;5", []Key{KeyA}},
		{"ss3 prefix then final", "\x1bO", "B ", nil, "\x1bO", []Key{KeySpace}},
		{"escape then plain key", "\x1b", "d", nil, "\x1b", []Key{KeyD}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, rest := parseKeys([]byte(tt.first))
			if !slices.Equal(keys, tt.wantFirst) {
				t.Fatalf("first keys = %v, want %v", keys, tt.wantFirst)
			}
			if string(rest) != tt.wantRest {
				t.Fatalf("rest = %q, want %q", rest, tt.wantRest)
			}
			got, rest := parseKeys(append(rest, tt.second...))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("second keys = %v, want %v", got, tt.want)
			}
			if len(rest) != 0 {
				t.Fatalf("unexpected leftover %q", rest)
			}
		})
	}
}

func TestStreamJoinsArrowSplitAcrossDrains(t *testing.T) {
	pr, pw := io.Pipe()
	s := StartStream(bufio.NewReader(pr))

	go func() {
		_, _ = pw.Write([]byte{0x1b})
	}()

	var got []Key
	deadline := time.Now().Add(2 * time.Second)
	for len(s.pending) == 0 && time.Now().Before(deadline) {
		got = append(got, ReadKeys(s)...)
		time.Sleep(time.Millisecond)
	}
	if len(s.pending) == 0 {
		t.Fatal("expected escape to be held for the next drain")
	}

	go func() {
		_, _ = pw.Write([]byte("[A"))
		_ = pw.Close()
	}()

	deadline = time.Now().Add(2 * time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		got = append(got, ReadKeys(s)...)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("expected stream to close")
	}
	if len(got) != 0 {
		t.Fatalf("arrow key split across drains produced %v", got)
	}
}
