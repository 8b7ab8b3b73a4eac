package render

// Target ids the host page provides. The renderers never create these
// containers; they only populate them.
const (
	IDPhoto    = "profile.photo"
	IDName     = "profile.name"
	IDJob      = "profile.job"
	IDJobTitle = "profile.job-title"
	IDTagline  = "profile.tagline"
	IDLocation = "profile.location"
	IDPhone    = "profile.phone"
	IDEmail    = "profile.email"

	IDHeroExperience        = "hero.experience"
	IDHeroExperienceLabel   = "hero.experience-label"
	IDHeroProjects          = "hero.projects"
	IDHeroProjectsLabel     = "hero.projects-label"
	IDHeroTechnologies      = "hero.technologies"
	IDHeroTechnologiesLabel = "hero.technologies-label"
	IDHeroCTAProjects       = "hero.cta-projects-text"
	IDHeroCTACV             = "hero.cta-cv-text"
	IDHeroCTAContact        = "hero.cta-contact-text"

	IDSkillsPersonal = "skills-personal"
	IDSkillsTech     = "skills-tech"
	IDSoftSkills     = "profile.skills.softSkills"
	IDHardSkills     = "profile.skills.hardSkills"
	IDEducation      = "profile.education"
	IDLanguages      = "profile.languages"
	IDPortfolio      = "profile.portfolio"
	IDExperience     = "profile.professionalExperience"

	IDSkillsTitle     = "skills-title"
	IDEducationTitle  = "education-title"
	IDLanguagesTitle  = "languages-title"
	IDPortfolioTitle  = "portfolio-title"
	IDExperienceTitle = "professionalExperience-title"
	IDContactTitle    = "contact-title"

	IDContactEmailLabel    = "contact-email-label"
	IDContactPhoneLabel    = "contact-phone-label"
	IDContactLocationLabel = "contact-location-label"
	IDContactConnectText   = "contact-connect-text"
	IDContactEmail         = "profile.email-contact"
	IDContactPhone         = "profile.phone-contact"
	IDContactLocation      = "profile.location-contact"

	IDWebsiteTitle       = "website-title"
	IDWebsiteDescription = "website-description"
	IDWebsiteButton      = "website-button"

	IDAboutTitle       = "about.title"
	IDAboutDescription = "about.description"

	IDThemeToggle = "theme-toggle"
	IDButtonPT    = "btnPT"
	IDButtonEN    = "btnEN"
)

// LoadingTargets are marked as loading before each fetch.
var LoadingTargets = []string{
	IDName,
	IDJob,
	IDJobTitle,
	IDLocation,
	IDPhone,
	IDEmail,
	IDSkillsTitle,
	IDEducationTitle,
	IDLanguagesTitle,
	IDPortfolioTitle,
	IDExperienceTitle,
	IDContactTitle,
	IDContactEmailLabel,
	IDContactPhoneLabel,
	IDContactLocationLabel,
	IDContactConnectText,
	IDWebsiteTitle,
	IDWebsiteDescription,
	IDWebsiteButton,
}

// AllTargets lists every id the host page is expected to provide.
var AllTargets = []string{
	IDPhoto, IDName, IDJob, IDJobTitle, IDTagline, IDLocation, IDPhone, IDEmail,
	IDHeroExperience, IDHeroExperienceLabel, IDHeroProjects, IDHeroProjectsLabel,
	IDHeroTechnologies, IDHeroTechnologiesLabel, IDHeroCTAProjects, IDHeroCTACV, IDHeroCTAContact,
	IDSkillsPersonal, IDSkillsTech, IDSoftSkills, IDHardSkills,
	IDEducation, IDLanguages, IDPortfolio, IDExperience,
	IDSkillsTitle, IDEducationTitle, IDLanguagesTitle, IDPortfolioTitle, IDExperienceTitle, IDContactTitle,
	IDContactEmailLabel, IDContactPhoneLabel, IDContactLocationLabel, IDContactConnectText,
	IDContactEmail, IDContactPhone, IDContactLocation,
	IDWebsiteTitle, IDWebsiteDescription, IDWebsiteButton,
	IDAboutTitle, IDAboutDescription,
	IDThemeToggle, IDButtonPT, IDButtonEN,
}
