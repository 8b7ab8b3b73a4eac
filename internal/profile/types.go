package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is one language's version of the portfolio content. A Document
// is never modified after it has been fetched; renderers only read it.
type Document struct {
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	Job      string `json:"job"`
	JobTitle string `json:"job-title,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`

	Skills                 *Skills          `json:"skills,omitempty"`
	SkillsTitles           *SkillsTitles    `json:"skillsTitles,omitempty"`
	Education              []Education      `json:"education"`
	Languages              []string         `json:"languages"`
	Portfolio              []Project        `json:"portfolio"`
	ProfessionalExperience []Experience     `json:"professionalExperience"`
	About                  *About           `json:"about,omitempty"`
	AccordionTitles        *AccordionTitles `json:"accordionTitles,omitempty"`
	ContactLabels          *ContactLabels   `json:"contactLabels,omitempty"`
	NeedWebsite            *NeedWebsite     `json:"needWebsite,omitempty"`
	Hero                   *Hero            `json:"hero,omitempty"`
}

// Skills groups technical and personal skills.
type Skills struct {
	HardSkills []HardSkill `json:"hardSkills"`
	SoftSkills []string    `json:"softSkills"`
}

// HardSkill is a technical skill with an optional proficiency level
// (basic, intermediate, advanced).
type HardSkill struct {
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	Level string `json:"level,omitempty"`
}

// SkillsTitles are the headings of the two skill lists.
type SkillsTitles struct {
	SkillsPersonal string `json:"skillsPersonal"`
	SkillsTech     string `json:"skillsTech"`
}

// Education is one course or degree.
type Education struct {
	Name        string `json:"name"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Project is one portfolio entry. Every field except Name is optional.
type Project struct {
	Name         string   `json:"name"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Status       string   `json:"status,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Stats        Stats    `json:"stats,omitempty"`
}

// Experience is one professional-experience or timeline entry. The legacy
// form uses Period/Name, the timeline form Date/Role.
type Experience struct {
	Date         string   `json:"date,omitempty"`
	Period       string   `json:"period,omitempty"`
	Role         string   `json:"role,omitempty"`
	Name         string   `json:"name,omitempty"`
	Company      string   `json:"company,omitempty"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Current      bool     `json:"current,omitempty"`
}

// When returns Date, falling back to Period.
func (e Experience) When() string {
	if e.Date != "" {
		return e.Date
	}
	return e.Period
}

// Title returns Role, falling back to Name.
func (e Experience) Title() string {
	if e.Role != "" {
		return e.Role
	}
	return e.Name
}

// About is the "about me" block with an optional career timeline.
type About struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timeline    []Experience `json:"timeline,omitempty"`
}

// AccordionTitles are the section headings.
type AccordionTitles struct {
	Skills                 string `json:"skills"`
	Education              string `json:"education"`
	Languages              string `json:"languages"`
	Portfolio              string `json:"portfolio"`
	ProfessionalExperience string `json:"professionalExperience"`
	Contact                string `json:"contact,omitempty"`
}

// ContactLabels are the captions of the contact section.
type ContactLabels struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	ConnectText string `json:"connectText"`
}

// NeedWebsite is the call-to-action banner offering website work.
type NeedWebsite struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

// Hero holds the headline counters and call-to-action captions.
type Hero struct {
	Stats *HeroStats `json:"stats,omitempty"`
	CTAs  *HeroCTAs  `json:"ctas,omitempty"`
}

// HeroStats are displayed as number/label pairs. The counters may be
// written as JSON numbers or strings such as "3+".
type HeroStats struct {
	Experience        Text   `json:"experience"`
	ExperienceLabel   string `json:"experienceLabel"`
	Projects          Text   `json:"projects"`
	ProjectsLabel     string `json:"projectsLabel"`
	Technologies      Text   `json:"technologies"`
	TechnologiesLabel string `json:"technologiesLabel"`
}

// Text is a display string that also accepts JSON numbers and booleans.
type Text string

// UnmarshalJSON accepts any JSON scalar.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return fmt.Errorf("expected a scalar, got %s", trimmed)
	}
	if bytes.Equal(trimmed, []byte("null")) {
		*t = ""
		return nil
	}
	*t = Text(scalarText(trimmed))
	return nil
}

// HeroCTAs are the hero button captions.
type HeroCTAs struct {
	Projects string `json:"projects"`
	CV       string `json:"cv"`
	Contact  string `json:"contact"`
}

// Stat is one label/value pair of a project's stats.
type Stat struct {
	Label string
	Value string
}

// Stats is a label→value mapping that keeps the key order of the source
// JSON object. Values may be strings or numbers.
type Stats []Stat

// UnmarshalJSON decodes a JSON object into ordered pairs.
func (s *Stats) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("stats: expected object, got %v", tok)
	}
	var out Stats
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("stats: unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("stats %q: %w", key, err)
		}
		out = append(out, Stat{Label: key, Value: scalarText(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON encodes the pairs back into a JSON object in order.
func (s Stats) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, st := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(st.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(st.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// scalarText renders a JSON scalar as display text. Strings are unquoted;
// numbers, booleans and anything else keep their JSON spelling.
func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// Decode parses a profile document. The payload must be a JSON object
// whose fields match the expected shape.
func Decode(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("profile document must be a JSON object")
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decoding profile document: %w", err)
	}
	return &doc, nil
}
