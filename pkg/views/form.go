package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/primeasset/recruit-landing/pkg/models"
	"github.com/primeasset/recruit-landing/pkg/services"
)

// Routes the form posts to
const (
	ApplyPath = "/apply"
	ResetPath = "/apply/reset"
)

const inputClass = "flex h-10 w-full rounded-md border border-slate-300 bg-white px-3 py-2 text-sm focus:outline-none focus:ring-2 focus:ring-blue-500"

// LandingPage composes the full page around the lead form
func LandingPage(view services.FlowView, companyURL string) g.Node {
	return Layout(
		PageConfig{},
		TopBar(),
		Main(
			Hero(companyURL),
			Features(),
			Highlights(),
			RecruitSection(RecruitForm(view)),
		),
		PageFooter(),
		FloatingCTA(),
	)
}

// RecruitForm renders the form in its current state: the editable form
// (with inline errors and any notice) or the success card
func RecruitForm(view services.FlowView) g.Node {
	if view.State == services.StateSubmitted {
		return SuccessCard(view.Notice)
	}

	v := view.Values
	submitting := view.State == services.StateSubmitting

	return Div(
		Class("w-full max-w-md mx-auto rounded-lg bg-white shadow-lg"),
		Div(
			Class("bg-slate-900 text-white rounded-t-lg p-6"),
			H3(Class("text-xl font-bold text-center"), g.Text("입사 상담 신청")),
			P(Class("text-slate-300 text-center text-sm mt-1"), g.Text("프라임에셋의 투명한 시스템을 경험하세요.")),
		),
		Div(
			Class("p-6 pt-6"),
			NoticeBanner(view.Notice),
			Form(
				Method("post"),
				Action(ApplyPath+formAnchor),
				g.Attr("data-submit-guard", ""),
				g.Attr("novalidate", ""),
				Class("space-y-4"),

				textField(models.FieldName, "이름", "text", "홍길동", v.Name, view.Errors),
				textField(models.FieldPhone, "연락처", "tel", "010-0000-0000", v.Phone, view.Errors),
				textField(models.FieldRegion, "거주지역", "text", "예: 서울 강남구, 부산 해운대구", v.Region, view.Errors),
				experienceField(v.Experience, view.Errors),
				privacyField(v.Privacy, view.Errors),

				Button(
					Type("submit"),
					Class("w-full rounded-md text-lg py-4 text-white bg-blue-600 hover:bg-blue-700 disabled:opacity-60"),
					g.Attr("data-busy-label", "접수 중..."),
					g.If(submitting, Disabled()),
					g.If(submitting, g.Text("접수 중...")),
					g.If(!submitting, g.Text("상담 신청하기")),
				),
			),
		),
	)
}

func fieldID(name string) string {
	return "lead-" + name
}

func fieldError(name string, errs models.FieldErrors) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(ID(fieldID(name)+"-error"), Class("text-sm font-medium text-red-600"), g.Text(msg))
}

func textField(name, label, inputType, placeholder, value string, errs models.FieldErrors) g.Node {
	invalid := errs.Has(name)
	return Div(
		Class("space-y-2"),
		Label(For(fieldID(name)), Class("text-sm font-medium"), g.Text(label)),
		Input(
			ID(fieldID(name)),
			Name(name),
			Type(inputType),
			Placeholder(placeholder),
			Value(value),
			Class(inputClass),
			g.If(invalid, g.Attr("aria-invalid", "true")),
			g.If(invalid, g.Attr("aria-describedby", fieldID(name)+"-error")),
		),
		fieldError(name, errs),
	)
}

func experienceField(selected models.Experience, errs models.FieldErrors) g.Node {
	name := models.FieldExperience
	return Div(
		Class("space-y-2"),
		Label(For(fieldID(name)), Class("text-sm font-medium"), g.Text("경력 사항")),
		Select(
			ID(fieldID(name)),
			Name(name),
			Class(inputClass),
			g.If(errs.Has(name), g.Attr("aria-invalid", "true")),
			Option(Value(""), g.If(!selected.Valid(), Selected()), g.Text("경력을 선택해주세요")),
			g.Group(g.Map(models.Experiences, func(e models.Experience) g.Node {
				return Option(Value(string(e)), g.If(e == selected, Selected()), g.Text(e.Label()))
			})),
		),
		fieldError(name, errs),
	)
}

func privacyField(checked bool, errs models.FieldErrors) g.Node {
	name := models.FieldPrivacy
	return Div(
		Class("space-y-2"),
		Div(
			Class("flex flex-row items-start space-x-3 rounded-md border p-4 bg-slate-50"),
			Input(
				ID(fieldID(name)),
				Name(name),
				Type("checkbox"),
				Value("true"),
				Class("mt-1 h-4 w-4"),
				g.If(checked, Checked()),
			),
			Div(
				Class("space-y-1 leading-none"),
				Label(For(fieldID(name)), Class("text-sm font-medium"), g.Text("개인정보 수집 및 이용 동의")),
				P(Class("text-xs mt-2 block text-slate-500"), g.Text("수집된 정보는 입사 상담 목적으로만 사용되며, 상담 종료 후 파기됩니다.")),
			),
		),
		fieldError(name, errs),
	)
}

// NoticeBanner renders a submit notice; nothing when notice is nil
func NoticeBanner(notice *services.Notice) g.Node {
	if notice == nil {
		return nil
	}
	class := "mb-4 rounded-md border px-4 py-3 text-sm "
	if notice.Level == services.NoticeError {
		class += "border-red-200 bg-red-50 text-red-700"
	} else {
		class += "border-green-200 bg-green-50 text-green-700"
	}
	return Div(Class(class), g.Attr("role", "status"), g.Text(notice.Message))
}

// SuccessCard replaces the form after a lead is sent. Its button posts the
// reset action, which brings back an empty form.
func SuccessCard(notice *services.Notice) g.Node {
	return Div(
		Class("w-full max-w-md mx-auto rounded-lg border border-green-200 bg-green-50"),
		Div(
			Class("text-center flex flex-col items-center py-10 px-6"),
			NoticeBanner(notice),
			Div(
				Class("h-12 w-12 rounded-full bg-green-100 flex items-center justify-center mb-4"),
				icon("check-circle-2", "h-6 w-6 text-green-600"),
			),
			H3(Class("text-xl font-bold text-green-800 mb-2"), g.Text("신청 완료!")),
			P(
				Class("text-green-700 text-sm mb-6"),
				g.Text("담당자가 확인 후 빠르게 연락드리겠습니다."), Br(),
				g.Text("잠시만 기다려주세요."),
			),
			Form(
				Method("post"),
				Action(ResetPath),
				Button(
					Type("submit"),
					Class("rounded-md border border-green-200 px-4 py-2 text-green-700 hover:bg-green-100"),
					g.Text("다시 작성하기"),
				),
			),
		),
	)
}
