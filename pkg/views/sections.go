package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	heroImage   = "https://pub-cdn.sider.ai/u/U0KAHZ1EG2Y/web-coder/691f0bf5965d1d957f04d528/resource/3dce58d7-caa2-4d46-9ecc-0a6fb46be004.jpg"
	growthImage = "https://pub-cdn.sider.ai/u/U0KAHZ1EG2Y/web-coder/691f0bf5965d1d957f04d528/resource/3ff15e7b-f28e-4358-b46e-d85929b11d4a.jpg"

	formAnchor = "#recruit-form"
)

func TopBar() g.Node {
	return Header(
		Class("sticky top-0 z-50 w-full border-b bg-white/80 backdrop-blur"),
		Div(
			Class("container mx-auto px-4 h-14 flex items-center justify-between"),
			Div(
				Class("font-bold text-xl text-blue-900 flex items-center gap-2"),
				icon("shield-check", "h-6 w-6 text-blue-600"),
				g.Text("PRIME ASSET"),
			),
			A(Href(formAnchor), Class("rounded-md px-3 py-1.5 text-sm font-medium text-white bg-blue-600 hover:bg-blue-700"), g.Text("상담 신청")),
		),
	)
}

// Hero renders the headline block. companyURL backs the "learn more" button.
func Hero(companyURL string) g.Node {
	return Section(
		Class("relative py-20 md:py-32 overflow-hidden bg-slate-900"),
		Div(
			Class("absolute inset-0 z-0 opacity-40"),
			Img(Src(heroImage), Alt("Background"), Class("w-full h-full object-cover")),
		),
		Div(
			Class("container mx-auto px-4 relative z-10 text-center break-keep"),
			Span(
				Class("inline-block mb-4 px-4 py-1 rounded-full text-sm font-medium bg-blue-500/20 text-blue-100 border border-blue-400/30"),
				g.Text("2025년 프라임에셋 특별 모집"),
			),
			H1(
				Class("text-4xl md:text-6xl font-extrabold tracking-tight text-white mb-6 leading-snug md:leading-tight"),
				g.Text("당신의 가치를 "), Br(Class("hidden md:block")),
				Span(Class("text-blue-400"), g.Text("가장 투명하게")), g.Text(" 증명하세요"),
			),
			P(
				Class("text-lg md:text-xl text-slate-300 max-w-2xl mx-auto mb-10 leading-relaxed"),
				g.Text("업계 최고의 수수료율, 공정한 승급 시스템, 그리고 전문가로 성장할 수 있는 체계적인 교육을 약속합니다."),
			),
			Div(
				Class("flex flex-col sm:flex-row items-center justify-center gap-4"),
				A(Href(formAnchor), Class("w-full sm:w-auto rounded-md text-lg px-8 py-4 text-white bg-blue-600 hover:bg-blue-700 shadow-lg"), g.Text("지금 지원하기")),
				g.If(companyURL != "",
					A(
						Href(companyURL), Target("_blank"), Rel("noopener noreferrer"),
						Class("w-full sm:w-auto rounded-md text-lg px-8 py-4 border border-white/20 bg-white/10 hover:bg-white/20 text-white"),
						g.Text("자세히 알아보기"),
					),
				),
			),
		),
	)
}

type feature struct {
	Icon        string
	Title       string
	Description string
}

var features = []feature{
	{"trending-up", "업계 최고 수준 수수료", "투명하게 공개된 수수료 규정에 따라, 노력한 만큼 정당하게 보상받으세요. 관리자 오버라이딩 없이 투명합니다."},
	{"briefcase", "공정한 승급 시스템", "밸류체인 시스템을 통해 누구나 본부장까지 승격할 수 있습니다. 인맥이 아닌 실력으로 평가받습니다."},
	{"users", "체계적인 교육 지원", "신입 정착 교육부터 전문가 심화 과정까지. 혼자가 아닌 함께 성장하는 문화를 지향합니다."},
}

func Features() g.Node {
	return Section(
		Class("py-20 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("text-center mb-16 break-keep"),
				H2(
					Class("text-3xl font-bold tracking-tight text-slate-900 mb-4"),
					g.Text("왜 "), Span(Class("text-blue-600"), g.Text("프라임에셋")), g.Text("인가요?"),
				),
				P(
					Class("text-slate-600 max-w-2xl mx-auto leading-relaxed"),
					g.Text("단순한 보험 대리점이 아닙니다. "), Br(Class("hidden md:block")),
					g.Text("우리는 설계사님의 성장이 곧 회사의 성장이라 믿습니다."),
				),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f feature) g.Node {
					return Div(
						Class("p-8 rounded-2xl bg-slate-50 border border-slate-100 hover:shadow-lg transition-shadow text-center md:text-left"),
						Div(Class("mb-4 p-3 bg-blue-100 rounded-xl w-fit mx-auto md:mx-0"), icon(f.Icon, "h-10 w-10 text-blue-600")),
						H3(Class("text-xl font-bold mb-3 text-slate-900"), g.Text(f.Title)),
						P(Class("text-slate-600 leading-relaxed break-keep"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

var highlights = []string{
	"33개 보험사 제휴로 폭넓은 상품 설계 가능",
	"영업 가족을 위한 다양한 시책 및 프로모션",
	"DB 제공 및 영업 지원 시스템 완비",
	"수평적이고 자유로운 조직 문화",
}

func Highlights() g.Node {
	return Section(
		Class("py-20 bg-slate-50"),
		Div(
			Class("container mx-auto px-4 max-w-4xl"),
			Div(
				Class("flex flex-col md:flex-row gap-10 items-center"),
				Div(
					Class("flex-1 space-y-6 text-center md:text-left break-keep"),
					H2(
						Class("text-3xl font-bold text-slate-900"),
						g.Text("보험 영업의 "), Br(Class("hidden md:block")),
						Span(Class("text-blue-600"), g.Text("새로운 기준")), g.Text("을 제시합니다"),
					),
					Ul(
						Class("space-y-4 text-left inline-block md:block"),
						g.Group(g.Map(highlights, func(item string) g.Node {
							return Li(
								Class("flex items-start gap-3"),
								icon("check", "h-6 w-6 text-green-500 flex-shrink-0 mt-0.5"),
								Span(Class("text-lg text-slate-700 font-medium"), g.Text(item)),
							)
						})),
					),
					P(
						Class("text-slate-600 pt-4 leading-relaxed"),
						g.Text("경력직 설계사님에게는 전직장 소득 증빙에 따른 최고의 우대 조건을, 신입 설계사님에게는 체계적인 정착 프로그램을 지원합니다."),
					),
				),
				Div(
					Class("flex-1 w-full"),
					Div(
						Class("rounded-2xl overflow-hidden shadow-xl bg-white"),
						Img(Src(growthImage), Alt("Growth"), Class("w-full h-64 object-cover")),
						Div(
							Class("p-6 break-keep"),
							Div(Class("text-sm text-blue-600 font-bold mb-2"), g.Text("GROWTH SYSTEM")),
							H3(Class("text-xl font-bold mb-2"), g.Text("밸류체인 (Value-Chain)")),
							P(
								Class("text-slate-500 text-sm leading-relaxed"),
								g.Text("프라임에셋만의 독보적인 승격 시스템으로, 개인의 성과가 곧 조직의 성장으로 이어지는 선순환 구조를 만듭니다."),
							),
						),
					),
				),
			),
		),
	)
}

// RecruitSection frames the lead form
func RecruitSection(form g.Node) g.Node {
	return Section(
		ID("recruit-form"),
		Class("py-24 bg-blue-900 relative"),
		Div(
			Class("container mx-auto px-4 relative z-10"),
			Div(
				Class("text-center mb-10 text-white break-keep"),
				H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text("지금 바로 도전하세요")),
				P(Class("text-blue-200 text-lg"), g.Text("간단한 정보를 남겨주시면 담당자가 친절하게 안내해 드립니다.")),
			),
			form,
			Div(
				Class("mt-12 text-center text-blue-300/60 text-sm space-y-1 break-keep px-4"),
				P(Class("font-semibold text-blue-200"), g.Text("프라임에셋 마스터사업부")),
				P(g.Text("서울 구로구 항동 산51-1, 구로SKV1센터 201호 프라임에셋 마스터사업부 서울사무소")),
			),
		),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("bg-slate-950 text-slate-500 py-8 border-t border-slate-800"),
		Div(
			Class("container mx-auto px-4 text-center text-sm"),
			P(Class("mb-2"), g.Text("© 2025 Prime Asset Recruitment. All rights reserved.")),
			P(g.Text("본 페이지는 보험설계사 모집을 위한 홍보 페이지입니다.")),
		),
	)
}

// FloatingCTA is the round jump-to-form button shown on small screens
func FloatingCTA() g.Node {
	return Div(
		Class("fixed bottom-6 right-6 z-40 md:hidden"),
		A(
			Href(formAnchor),
			Class("rounded-full w-14 h-14 bg-blue-600 hover:bg-blue-700 shadow-lg flex items-center justify-center"),
			g.Attr("aria-label", "상담 신청으로 이동"),
			icon("chevron-down", "h-6 w-6 text-white animate-bounce"),
		),
	)
}
