package rules

import (
	"strings"

	"github.com/vysti/marker/core/devices"
	"github.com/vysti/marker/core/mark"
	"github.com/vysti/marker/core/nlp"
	"github.com/vysti/marker/core/rulebook"
	"github.com/vysti/marker/core/span"
)

// alignment.go - Body paragraph to thesis alignment.
//
// The Nth body paragraph should open on the Nth thesis topic. A topic
// sentence on a later thesis topic gets a reordering callout; a topic
// the thesis never names gets a put-it-in-the-thesis callout; a topic
// sentence with no recognizable connection at all is off-topic. When
// the expected device shows up later in the paragraph, the callout
// points there instead.

func alignmentDetector() Detector {
	return Detector{ID: "alignment", Roles: []Role{RoleBody}, Run: runAlignment}
}

func runAlignment(c *Context) []*mark.Mark {
	if c.Bridge || !c.State.HasThesis() {
		return nil
	}
	if c.Last && !c.Config.NoConclusion() {
		return nil
	}

	topic := span.TopicSentenceSpan(c.Text, c.Ann.Sentences)
	topicHits := hitsWithin(c, topic)

	expected, hasExpected := c.State.ThesisTopicAt(c.BodyIndex)
	if hasExpected && topicMatches(c, topic, topicHits, expected) {
		return nil
	}

	if hasExpected {
		// The right device may be buried later in the paragraph.
		if h, ok := findDeviceAfter(c, topic.End, expected); ok {
			return []*mark.Mark{c.Flag(h.Start, h.End, rulebook.LabelMoveToTopic, mark.ColorStructural)}
		}
	}

	if len(topicHits) > 0 {
		h := topicHits[0]
		if c.State.ThesisHas(h.Canonical) {
			// Named in the thesis, just not at this position.
			return []*mark.Mark{c.Flag(topic.Start, topic.End, rulebook.LabelFollowThesis, mark.ColorStructural)}
		}
		return []*mark.Mark{c.Flag(h.Start, h.End, rulebook.LabelTopicInThesis, mark.ColorStructural)}
	}

	// No device at all: fall back to content-noun overlap with the
	// thesis sentence text.
	for _, t := range c.Ann.Tokens {
		if t.Start < topic.Start || t.End > topic.End {
			continue
		}
		if t.POS == nlp.POSNoun && c.State.ThesisMentions(t.Lemma) {
			return []*mark.Mark{c.Flag(topic.Start, topic.End, rulebook.LabelTopicInThesis, mark.ColorStructural)}
		}
	}
	return []*mark.Mark{c.Flag(topic.Start, topic.End, rulebook.LabelOffTopic, mark.ColorStructural)}
}

// topicMatches reports whether the topic sentence carries the expected
// device: as a recognized hit, as a raw substring, or introduced by a
// preceding bridge paragraph.
func topicMatches(c *Context, topic nlp.Span, hits []devices.Hit, expected string) bool {
	for _, h := range hits {
		if h.Canonical == expected {
			return true
		}
	}
	if strings.Contains(strings.ToLower(c.Text[topic.Start:topic.End]), expected) {
		return true
	}
	return c.State.BridgeIntroduced(expected)
}

// findDeviceAfter scans the paragraph past pos for an unquoted
// occurrence of the expected device.
func findDeviceAfter(c *Context, pos int, expected string) (devices.Hit, bool) {
	for _, h := range c.Devices.Find(c.Text, c.Ann.Tokens) {
		if h.Start < pos || h.Canonical != expected {
			continue
		}
		if c.InQuote(h.Start) {
			continue
		}
		return h, true
	}
	return devices.Hit{}, false
}
