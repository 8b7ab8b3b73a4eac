package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Gabolonhez/Portfolio/internal/i18n"
)

// pageTemplate is the default host page. It carries every render target
// id and is used when no page is configured.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="./src/css/style.css">
</head>
<body class="dark-mode" lang="{{.Lang}}">
  <header class="header">
    <img id="profile.photo" class="photo" src="" alt="">
    <h1 id="profile.name" class="title"></h1>
    <p id="profile.job-title" class="job-title"></p>
    <p id="profile.tagline" class="tagline"></p>
    <div class="language-switch">
      <button id="btnPT" aria-pressed="false">PT</button>
      <button id="btnEN" aria-pressed="false">EN</button>
    </div>
    <img id="theme-toggle" class="theme-toggle" src="" alt="theme">
    <div class="hero-stats">
      <div class="stat"><span id="hero.experience" class="stat-number"></span><span id="hero.experience-label"></span></div>
      <div class="stat"><span id="hero.projects" class="stat-number"></span><span id="hero.projects-label"></span></div>
      <div class="stat"><span id="hero.technologies" class="stat-number"></span><span id="hero.technologies-label"></span></div>
    </div>
    <div class="hero-ctas">
      <a href="#portfolio"><span id="hero.cta-projects-text"></span></a>
      <a href="#cv"><span id="hero.cta-cv-text"></span></a>
      <a href="#contact"><span id="hero.cta-contact-text"></span></a>
    </div>
    <div class="information">
      <p id="profile.job" class="work"></p>
      <p id="profile.location" class="location"></p>
      <a id="profile.phone" class="phone" href=""></a>
      <a id="profile.email" class="email" href=""></a>
    </div>
  </header>

  <main>
    <section class="about">
      <h2 id="about.title"></h2>
      <p id="about.description"></p>
    </section>

    <section class="acordeon">
      <div class="trigger"><h2 id="skills-title"></h2></div>
      <div class="content">
        <h3 id="skills-tech"></h3>
        <ul id="profile.skills.hardSkills" class="tools"></ul>
        <h3 id="skills-personal"></h3>
        <ul id="profile.skills.softSkills"></ul>
      </div>
    </section>

    <section class="acordeon">
      <div class="trigger"><h2 id="languages-title"></h2></div>
      <ul id="profile.languages" class="content"></ul>
    </section>

    <section class="acordeon">
      <div class="trigger"><h2 id="education-title"></h2></div>
      <ul id="profile.education" class="content"></ul>
    </section>

    <section class="acordeon" id="portfolio">
      <div class="trigger"><h2 id="portfolio-title"></h2></div>
      <ul id="profile.portfolio" class="portfolio content"></ul>
    </section>

    <section class="acordeon">
      <div class="trigger"><h2 id="professionalExperience-title"></h2></div>
      <div id="profile.professionalExperience" class="timeline content"></div>
    </section>

    <section class="need-website">
      <h2 id="website-title"></h2>
      <p id="website-description"></p>
      <a href="#contact"><span id="website-button"></span></a>
    </section>

    <section class="contact" id="contact">
      <h2 id="contact-title"></h2>
      <p><span id="contact-email-label"></span> <a id="profile.email-contact" href=""></a></p>
      <p><span id="contact-phone-label"></span> <a id="profile.phone-contact" href=""></a></p>
      <p><span id="contact-location-label"></span> <span id="profile.location-contact"></span></p>
      <p id="contact-connect-text"></p>
    </section>
  </main>
</body>
</html>`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// DefaultPage renders the default host page for lang.
func DefaultPage(lang i18n.Lang, title string) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Lang  i18n.Lang
		Title string
	}{lang, title})
	if err != nil {
		return nil, fmt.Errorf("rendering default page: %w", err)
	}
	return buf.Bytes(), nil
}
