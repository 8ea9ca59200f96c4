package event

import "testing"

func TestTopicSegments(t *testing.T) {
	tests := []struct {
		topic Topic
		want  int
	}{
		{"", 0},
		{"drawing", 1},
		{"drawing.point.added", 3},
	}

	for _, tt := range tests {
		if got := len(tt.topic.Segments()); got != tt.want {
			t.Errorf("Segments(%q) has %d parts, want %d", tt.topic, got, tt.want)
		}
	}
}

func TestTopicParentBase(t *testing.T) {
	topic := Topic("drawing.point.added")

	if got := topic.Parent(); got != "drawing.point" {
		t.Errorf("Parent = %q, want drawing.point", got)
	}
	if got := topic.Base(); got != "added" {
		t.Errorf("Base = %q, want added", got)
	}
	if got := Topic("drawing").Parent(); got != "" {
		t.Errorf("Parent of single segment = %q, want empty", got)
	}
}

func TestTopicIsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"drawing.point.added", true},
		{"drawing", true},
		{"", false},
		{".drawing", false},
		{"drawing.", false},
		{"drawing..point", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic), func(t *testing.T) {
			if got := tt.topic.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		name    string
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"exact", "drawing.point.added", "drawing.point.added", true},
		{"exact mismatch", "drawing.point.added", "drawing.point.removed", false},
		{"single wildcard", "history.undo", "history.*", true},
		{"single wildcard wrong depth", "drawing.point.added", "drawing.*", false},
		{"single wildcard mid", "drawing.point.added", "drawing.*.added", true},
		{"multi wildcard tail", "drawing.point.added", "drawing.**", true},
		{"multi wildcard zero segments", "drawing", "drawing.**", true},
		{"multi wildcard everything", "config.reloaded", "**", true},
		{"multi wildcard mid", "drawing.point.added", "**.added", true},
		{"prefix alone does not match", "drawing.point.added", "drawing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.topic.Match(tt.pattern); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
			}
		})
	}
}
