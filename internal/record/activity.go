// Package record defines the two record shapes the application logs and the drafts
// used to create or edit them.
package record

// Activity is one logged school activity.
type Activity struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Activity   string `json:"activity"`
	Person     string `json:"person"`
	Evaluation string `json:"evaluation"`
}

func (a Activity) RecordID() int64 { return a.ID }

func (a Activity) WithID(id int64) Activity {
	a.ID = id
	return a
}

// Evaluations are the statuses offered by the form. The empty string means "not yet evaluated".
var Evaluations = []string{
	"Pending",
	"Ongoing",
	"Successful",
	"Needs Improvement",
	"Cancelled",
}

// NextEvaluation cycles through "" followed by Evaluations, stepping by dir (+1 or -1).
func NextEvaluation(cur string, dir int) string {
	opts := append([]string{""}, Evaluations...)
	idx := 0
	for i, o := range opts {
		if o == cur {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(opts)) % len(opts)
	return opts[idx]
}

// ActivityDraft is the form state for an Activity.
type ActivityDraft struct {
	Date       string `json:"date"`
	Activity   string `json:"activity"`
	Person     string `json:"person"`
	Evaluation string `json:"evaluation"`
}

// Validate requires date, activity and person. Evaluation is optional.
func (d ActivityDraft) Validate() error {
	return requireFields(
		[2]string{"date", d.Date},
		[2]string{"activity", d.Activity},
		[2]string{"person", d.Person},
	)
}

// Apply replaces every field of base except its id. Values are stored as typed; only
// validation looks at them trimmed.
func (d ActivityDraft) Apply(base Activity) Activity {
	base.Date = d.Date
	base.Activity = d.Activity
	base.Person = d.Person
	base.Evaluation = d.Evaluation
	return base
}

func (d ActivityDraft) IsZero() bool { return d == ActivityDraft{} }

// ActivityDraftOf loads a record's current values into a draft.
func ActivityDraftOf(a Activity) ActivityDraft {
	return ActivityDraft{
		Date:       a.Date,
		Activity:   a.Activity,
		Person:     a.Person,
		Evaluation: a.Evaluation,
	}
}
