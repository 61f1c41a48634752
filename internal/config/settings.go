package config

// OverflowPolicy decides what happens to candidates rejected by a per-type point cap.
type OverflowPolicy string

const (
	// OverflowStrict drops candidates rejected by their type cap.
	OverflowStrict OverflowPolicy = "strict"
	// OverflowSpill retries them against the section-wide maxPoints after the main pool.
	OverflowSpill OverflowPolicy = "spill"
)

// Valid reports whether p is a known policy. The empty policy is strict.
func (p OverflowPolicy) Valid() bool {
	switch p {
	case "", OverflowStrict, OverflowSpill:
		return true
	default:
		return false
	}
}

// SettingKeys lists the root keys of an exam file that are settings rather than sections.
var SettingKeys = []string{
	"test",
	"instructor",
	"courseName",
	"courseNumber",
	"term",
	"school",
	"department",
	"nameOnEveryPage",
	"typeOverflow",
}

// IsSettingKey reports whether key is an exam setting.
func IsSettingKey(key string) bool {
	for _, candidate := range SettingKeys {
		if candidate == key {
			return true
		}
	}
	return false
}

// Settings is the exam-level metadata carried through to the renderer.
type Settings struct {
	Test            string         `yaml:"test" json:"test"`
	Instructor      string         `yaml:"instructor" json:"instructor,omitempty"`
	CourseName      string         `yaml:"courseName" json:"courseName,omitempty"`
	CourseNumber    string         `yaml:"courseNumber" json:"courseNumber,omitempty"`
	Term            string         `yaml:"term" json:"term,omitempty"`
	School          string         `yaml:"school" json:"school,omitempty"`
	Department      string         `yaml:"department" json:"department,omitempty"`
	NameOnEveryPage bool           `yaml:"nameOnEveryPage" json:"nameOnEveryPage"`
	TypeOverflow    OverflowPolicy `yaml:"typeOverflow" json:"typeOverflow"`
}
