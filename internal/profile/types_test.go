package profile

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
)

func TestStatsKeepSourceOrder(t *testing.T) {
	var p Project
	if err := json.Unmarshal([]byte(`{"name":"x","stats":{"stars":12,"forks":"3","users":"1k+"}}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Stats{{"stars", "12"}, {"forks", "3"}, {"users", "1k+"}}
	if diff := cmp.Diff(want, p.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(p.Stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"stars":"12","forks":"3","users":"1k+"}` {
		t.Errorf("marshal = %s", out)
	}
}

func TestStatsRejectsArray(t *testing.T) {
	var s Stats
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Error("expected error for array stats")
	}
}

func TestHeroStatsAcceptNumbers(t *testing.T) {
	var h HeroStats
	if err := json.Unmarshal([]byte(`{"experience":3,"projects":"10+","technologies":null}`), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if h.Experience != "3" || h.Projects != "10+" || h.Technologies != "" {
		t.Errorf("got %+v", h)
	}
}

func TestDecodeRequiresObject(t *testing.T) {
	for _, in := range []string{"", "null", "[]", "42"} {
		if _, err := Decode([]byte(in)); err == nil {
			t.Errorf("Decode(%q) should fail", in)
		}
	}
	doc, err := Decode([]byte(`  {"name":"A","job-title":"Dev"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Name != "A" || doc.JobTitle != "Dev" {
		t.Errorf("got %+v", doc)
	}
}

func TestExperienceFieldFallbacks(t *testing.T) {
	legacy := Experience{Period: "2020", Name: "Dev"}
	if legacy.When() != "2020" || legacy.Title() != "Dev" {
		t.Errorf("legacy = %q/%q", legacy.When(), legacy.Title())
	}
	timeline := Experience{Date: "2021", Period: "ignored", Role: "Lead", Name: "ignored"}
	if timeline.When() != "2021" || timeline.Title() != "Lead" {
		t.Errorf("timeline = %q/%q", timeline.When(), timeline.Title())
	}
}

func TestFallbackLocalized(t *testing.T) {
	id := DefaultIdentity()
	id.Email = "me@example.com"

	pt := Fallback(id, i18n.PT)
	en := Fallback(id, i18n.EN)

	if pt.Name != en.Name || pt.Email != en.Email {
		t.Error("identity should not depend on language")
	}
	if pt.ContactLabels.Phone != "Telefone" || en.ContactLabels.Phone != "Phone" {
		t.Errorf("phone labels = %q / %q", pt.ContactLabels.Phone, en.ContactLabels.Phone)
	}
	if pt.AccordionTitles.ProfessionalExperience != "Experiência" || en.AccordionTitles.ProfessionalExperience != "Experience" {
		t.Errorf("experience titles = %q / %q", pt.AccordionTitles.ProfessionalExperience, en.AccordionTitles.ProfessionalExperience)
	}
	if en.Job != "Front-end Developer | QA" {
		t.Errorf("en job = %q", en.Job)
	}

	// Each call returns an independent document.
	pt.AccordionTitles.Skills = "changed"
	if Fallback(id, i18n.PT).AccordionTitles.Skills != "Habilidades" {
		t.Error("fallback titles share state between calls")
	}
}

func TestDefaultIdentityIsComplete(t *testing.T) {
	for _, lang := range []i18n.Lang{i18n.PT, i18n.EN} {
		doc := Fallback(DefaultIdentity(), lang)
		for field, v := range map[string]string{
			"name":     doc.Name,
			"photo":    doc.Photo,
			"job":      doc.Job,
			"location": doc.Location,
			"phone":    doc.Phone,
			"email":    doc.Email,
		} {
			if v == "" {
				t.Errorf("%s fallback has an empty %s", lang, field)
			}
		}
	}
}
