package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageConfig holds the document level metadata
type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

const (
	defaultTitle       = "프라임에셋 입사 상담 신청"
	defaultDescription = "업계 최고의 수수료율, 공정한 승급 시스템, 체계적인 교육. 프라임에셋 설계사 모집."
)

// Layout wraps content in the HTML document shell
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}
	if config.OGImage == "" {
		config.OGImage = heroImage
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("ko"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				// Tailwind Play CDN builds styles in the browser and is meant for
				// development; swap in a compiled stylesheet before real traffic.
				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-slate-50 font-sans text-slate-900"),
				g.Group(content),
				submitGuardScript(),
			),
		),
	})
}

// icon renders a lucide icon through iconify
func icon(name, class string) g.Node {
	return Span(Class("iconify "+class), g.Attr("data-icon", "lucide:"+name), g.Attr("aria-hidden", "true"))
}

// submitGuardScript disables the submit button once the form is posted so a
// double click cannot send the same lead twice
func submitGuardScript() g.Node {
	return Script(g.Raw(`
document.querySelectorAll("form[data-submit-guard]").forEach(function (form) {
  form.addEventListener("submit", function () {
    var btn = form.querySelector("button[type=submit]");
    if (!btn) return;
    btn.disabled = true;
    btn.textContent = btn.getAttribute("data-busy-label") || btn.textContent;
  });
});
`))
}
