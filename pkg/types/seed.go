package types

import (
	"math/rand"
	"time"
)

// seedEntry is a compact seed row expanded by SeedParticipants.
type seedEntry struct {
	id    string
	name  string
	label string
}

// legacySeed lists the participants already lit when the board first
// went up: one entry per discussion lead from earlier weeks.
var legacySeed = []seedEntry{
	{"leg-3", "Amy", "Week 3"},
	{"leg-4", "Haoran Wang", "Week 3"},
	{"leg-5", "Qian Liu", "Week 4"},
	{"leg-6", "Habeeb", "Week 5"},
	{"leg-7", "Alina Zhang", "Week 5"},
	{"leg-8", "Qian Liu", "Week 6"},
	{"leg-9", "Linyan Li", "Week 7"},
	{"leg-10", "Fabian", "Week 7"},
	{"leg-11", "Arjun", "Week 7"},
	{"leg-12", "Qin Liu", "Week 8"},
	{"leg-13", "Junjie Yan", "Week 8"},
	{"leg-14", "Shuaizhi Chen", "Week 9"},
	{"leg-15", "Matt Bai", "Week 9"},
	{"leg-16", "Wonju Yoo", "Week 9"},
	{"leg-17", "Evelyn Pan", "Week 12"},
	{"leg-18", "Shaofeng", "Week 12"},
	{"leg-19", "Asa Wold", "Week 12"},
	{"leg-20", "Ary", "Week 14"},
	{"leg-21", "Yixin Wang", "Week 14"},
}

// pendingSeed lists the presenters who have not yet claimed their slot.
var pendingSeed = []seedEntry{
	{"pen-1", "Asa Wold", "Presenter"},
	{"pen-2", "Raymond Lu", "Presenter"},
	{"pen-3", "Qin Liu", "Presenter"},
	{"pen-4", "Haoran WANG", "Presenter"},
	{"pen-5", "Shaofeng Sun", "Presenter"},
	{"pen-6", "Yixin WANG", "Presenter"},
	{"pen-7", "Felix Zhu", "Presenter"},
	{"pen-8", "Linyan Li", "Presenter"},
	{"pen-9", "Matt Bai", "Presenter"},
	{"pen-10", "Amy Cai", "Presenter"},
	{"pen-11", "Wonju Yoo", "Presenter"},
	{"pen-12", "Shuaizhi Chen", "Presenter"},
	{"pen-13", "Habeeb Afolabi", "Presenter"},
	{"pen-14", "Alina Zhang", "Presenter"},
	{"pen-15", "Arjun Sahlot", "Presenter"},
	{"pen-16", "Ary Saini", "Presenter"},
	{"pen-17", "Junjie Yan", "Presenter"},
	{"pen-18", "Fabian Clarke", "Presenter"},
	{"pen-19", "Evelyn PAN", "Presenter"},
}

// SeedParticipants returns the fixed initial board: lit legacy records
// followed by unlit pending records, all stamped with now.
func SeedParticipants(now time.Time) []Participant {
	ms := now.UnixMilli()
	out := make([]Participant, 0, len(legacySeed)+len(pendingSeed))
	for _, e := range legacySeed {
		out = append(out, Participant{
			ID: e.id, Name: e.name, Origin: OriginLegacy,
			Timestamp: ms, Label: e.label, Lit: true,
		})
	}
	for _, e := range pendingSeed {
		out = append(out, Participant{
			ID: e.id, Name: e.name, Origin: OriginPending,
			Timestamp: ms, Label: e.label, Lit: false,
		})
	}
	return out
}

// thankYouMessages are shown to a visitor after a successful join.
var thankYouMessages = []string{
	"Your dedication and enthusiasm this semester have truly brightened our class.",
	"Thank you for your hard work and the positive energy you brought to every session.",
	"We appreciate your wonderful contributions and the effort you put into this semester.",
	"Your unique perspective and consistent participation made a real difference.",
	"Thank you for being such a valuable part of our community this term.",
	"Your growth and cooperation throughout the semester have been inspiring to watch.",
	"We are so grateful for your engagement and the creativity you shared with us.",
	"Thank you for your commitment and for making this semester memorable for everyone.",
	"Your thoughtful contributions and support have been a gift to the class.",
	"We really appreciate your cooperation and the hard work you invested this semester.",
}

// ThankYouMessage returns a random thank-you line.
func ThankYouMessage() string {
	return thankYouMessages[rand.Intn(len(thankYouMessages))]
}
