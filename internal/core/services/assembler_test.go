package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_SectionOrder(t *testing.T) {
	prompt := BuildPrompt(
		"You are Tutor.",
		"Student Name: Ana\n",
		"\n--- Source: notes.txt ---\nmitosis is cell division\n",
		"what is mitosis?",
	)

	iSystem := strings.Index(prompt, "You are Tutor.")
	iContext := strings.Index(prompt, MarkerStudentContext)
	iKB := strings.Index(prompt, MarkerKnowledgeBase)
	iQuestion := strings.Index(prompt, MarkerQuestion)

	require.True(t, iSystem >= 0 && iContext >= 0 && iKB >= 0 && iQuestion >= 0)
	assert.Less(t, iSystem, iContext)
	assert.Less(t, iContext, iKB)
	assert.Less(t, iKB, iQuestion)
}

func TestBuildPrompt_ExcerptVerbatimBetweenMarkers(t *testing.T) {
	excerpt := "\n--- Source: notes.txt ---\nmitosis is cell division\n"
	prompt := BuildPrompt("sys", "profile", excerpt, "what is mitosis?")

	iKB := strings.Index(prompt, MarkerKnowledgeBase)
	iQuestion := strings.Index(prompt, MarkerQuestion)
	between := prompt[iKB:iQuestion]

	assert.Contains(t, between, excerpt)
}

func TestBuildPrompt_EmptyExcerptUsesFallback(t *testing.T) {
	prompt := BuildPrompt("sys", "profile", "", "question")

	assert.Contains(t, prompt, KnowledgeBaseFallback)
	assert.Contains(t, prompt, "remind student to upload materials")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("s", "p", "k", "q")
	b := BuildPrompt("s", "p", "k", "q")
	assert.Equal(t, a, b)
}
