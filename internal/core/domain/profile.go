package domain

import "strings"

// HistoryCapacity bounds the exchange history. Oldest entries drop first.
const HistoryCapacity = 10

// DefaultStudentName is used when a profile store has no record yet.
const DefaultStudentName = "Student"

// Exchange is one question/answer pair in the learner's history.
type Exchange struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Profile is the persistent record of a learner: identity, subjects,
// topic progress, and a bounded history of recent exchanges.
// One instance per learner session; no multi-user keying.
type Profile struct {
	Name            string     `json:"name"`
	Subjects        []string   `json:"subjects"`
	WeakTopics      []string   `json:"weak_topics"`
	CompletedTopics []string   `json:"completed_topics"`
	History         []Exchange `json:"history"`
}

// NewProfile returns the default profile used when no record exists.
func NewProfile() *Profile {
	return &Profile{
		Name:            DefaultStudentName,
		Subjects:        []string{},
		WeakTopics:      []string{},
		CompletedTopics: []string{},
		History:         []Exchange{},
	}
}

// SetName overwrites the learner's name unconditionally.
func (p *Profile) SetName(name string) {
	p.Name = name
}

// AddSubjects unions the given subjects into the profile.
// Returns true if the subject set changed.
func (p *Profile) AddSubjects(subjects []string) bool {
	changed := false
	for _, s := range subjects {
		if !contains(p.Subjects, s) {
			p.Subjects = append(p.Subjects, s)
			changed = true
		}
	}
	return changed
}

// FlagWeakTopic adds a topic needing reinforcement.
// Idempotent: returns false if the topic is already flagged.
func (p *Profile) FlagWeakTopic(topic string) bool {
	if contains(p.WeakTopics, topic) {
		return false
	}
	p.WeakTopics = append(p.WeakTopics, topic)
	return true
}

// MarkCompleted moves a topic to completed. The topic is removed from the
// weak list first; a topic is never in both lists at once.
// Returns true if either list changed.
func (p *Profile) MarkCompleted(topic string) bool {
	changed := false
	if i := index(p.WeakTopics, topic); i >= 0 {
		p.WeakTopics = append(p.WeakTopics[:i], p.WeakTopics[i+1:]...)
		changed = true
	}
	if !contains(p.CompletedTopics, topic) {
		p.CompletedTopics = append(p.CompletedTopics, topic)
		changed = true
	}
	return changed
}

// RecordExchange appends a question/answer pair, evicting the oldest
// entries beyond HistoryCapacity.
func (p *Profile) RecordExchange(question, answer string) {
	p.History = append(p.History, Exchange{Question: question, Answer: answer})
	if len(p.History) > HistoryCapacity {
		p.History = p.History[len(p.History)-HistoryCapacity:]
	}
}

// Summary renders the fixed-format student context block. Every line is
// always present; empty lists render as empty after the colon.
func (p *Profile) Summary() string {
	var b strings.Builder
	b.WriteString("Student Name: ")
	b.WriteString(p.Name)
	b.WriteString("\nCurrent Subjects: ")
	b.WriteString(strings.Join(p.Subjects, ", "))
	b.WriteString("\nWeak Topics: ")
	b.WriteString(strings.Join(p.WeakTopics, ", "))
	b.WriteString("\nCompleted Topics: ")
	b.WriteString(strings.Join(p.CompletedTopics, ", "))
	b.WriteString("\n")
	return b.String()
}

// Clone returns a deep copy so callers can hand out profile snapshots
// without exposing internal slices.
func (p *Profile) Clone() *Profile {
	c := &Profile{
		Name:            p.Name,
		Subjects:        append([]string{}, p.Subjects...),
		WeakTopics:      append([]string{}, p.WeakTopics...),
		CompletedTopics: append([]string{}, p.CompletedTopics...),
		History:         append([]Exchange{}, p.History...),
	}
	return c
}

func contains(list []string, s string) bool {
	return index(list, s) >= 0
}

func index(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
