package folium

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/folium/analyze"
	"github.com/tsawler/folium/model"
	"github.com/tsawler/folium/segment"
)

func testTemplate() *model.Template {
	return &model.Template{
		Metadata: model.Metadata{Name: "test"},
		Typography: map[string]model.Typography{
			"title":   {FontFamily: "Georgia", FontSize: 36, FontWeight: "bold", LineHeight: 1.2},
			"heading": {FontFamily: "Georgia", FontSize: 24, FontWeight: "bold", LineHeight: 1.3},
			"body":    {FontFamily: "Arial", FontSize: 18, FontWeight: "normal", LineHeight: 1.4},
		},
		Colors: map[string]string{
			"primary":    "#1a1a2e",
			"secondary":  "#16213e",
			"background": "#ffffff",
			"text":       "#333333",
		},
		Layouts: map[string]model.Layout{
			"title_slide": {
				"title_position":    model.NewRect(60, 140, 600, 90),
				"subtitle_position": model.NewRect(60, 240, 600, 50),
				"body_position":     model.NewRect(60, 300, 600, 100),
			},
			"content_slide": {
				"heading_position": model.NewRect(40, 100, 640, 45),
				"body_position":    model.NewRect(40, 160, 640, 300),
			},
		},
	}
}

func TestProcessSlide_TitleSubtitleBody(t *testing.T) {
	elements := ProcessSlide("Quarterly Report\nQ4 2024\nRevenue grew.", 0, testTemplate(), model.LayoutTypeTitle)

	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}

	title := elements[0]
	if title.Role != model.RoleTitle || title.Content != "Quarterly Report" {
		t.Errorf("title = %+v", title)
	}
	if title.FontFamily != "Georgia" || title.FontSize != 36 || title.Color != "#1a1a2e" {
		t.Errorf("title styling = %s/%v/%s", title.FontFamily, title.FontSize, title.Color)
	}
	if want := model.NewRect(60, 140, 600, 90); title.StyledPosition != want {
		t.Errorf("title position = %+v, want %+v", title.StyledPosition, want)
	}

	subtitle := elements[1]
	if subtitle.Role != model.RoleSubtitle || subtitle.Content != "Q4 2024" {
		t.Errorf("subtitle = %+v", subtitle)
	}
	if subtitle.Color != "#16213e" {
		t.Errorf("subtitle color = %q, want secondary", subtitle.Color)
	}

	body := elements[2]
	if body.Role != model.RoleBody || body.Content != "Revenue grew." {
		t.Errorf("body = %+v", body)
	}
}

func TestProcessSlide_HeadingWithCollectedList(t *testing.T) {
	elements := ProcessSlide("Key Metrics:\nSales up\nUsers up\nChurn down", 1, testTemplate(), model.LayoutTypeContent)

	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if elements[0].Role != model.RoleHeading || elements[0].Content != "Key Metrics:" {
		t.Errorf("heading = %+v", elements[0])
	}

	list := elements[1]
	if list.ContentType != model.ContentTypeBulletList || !list.IsList {
		t.Fatalf("expected bullet list, got %+v", list)
	}
	if want := []string{"Sales up", "Users up", "Churn down"}; !reflect.DeepEqual(list.Items, want) {
		t.Errorf("items = %v, want %v", list.Items, want)
	}
	if want := "• Sales up\n• Users up\n• Churn down"; list.Content != want {
		t.Errorf("content = %q, want %q", list.Content, want)
	}
	// Lists drop 2pt from the body size.
	if list.FontSize != 16 {
		t.Errorf("list font size = %v, want 16", list.FontSize)
	}
}

func TestProcessSlide_NumberedList(t *testing.T) {
	elements := ProcessSlide("1. Plan\n2. Build\n3. Ship", 1, testTemplate(), model.LayoutTypeContent)

	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	list := elements[0]
	if list.Role != model.RoleBody || list.ContentType != model.ContentTypeNumberedList {
		t.Fatalf("expected BODY numbered list, got %+v", list)
	}
	if want := []string{"Plan", "Build", "Ship"}; !reflect.DeepEqual(list.Items, want) {
		t.Errorf("items = %v, want %v", list.Items, want)
	}
	if want := "1. Plan\n2. Build\n3. Ship"; list.Content != want {
		t.Errorf("content = %q, want %q", list.Content, want)
	}
}

func TestProcessSlide_NumberedLinesAfterColonHeadingBecomeBullets(t *testing.T) {
	elements := ProcessSlide("Goals:\n1. First\n2. Second", 1, testTemplate(), model.LayoutTypeContent)

	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	list := elements[1]
	if list.ContentType != model.ContentTypeBulletList {
		t.Fatalf("expected bullet list, got %v", list.ContentType)
	}
	if want := "• First\n• Second"; list.Content != want {
		t.Errorf("content = %q, want %q", list.Content, want)
	}
}

func TestProcessSlide_Empty(t *testing.T) {
	for _, text := range []string{"", "   \n  "} {
		if got := ProcessSlide(text, 0, testTemplate(), model.LayoutTypeTitle); len(got) != 0 {
			t.Errorf("ProcessSlide(%q) = %d elements, want 0", text, len(got))
		}
	}
}

func TestAnalyzeEmphasis(t *testing.T) {
	got := analyze.AnalyzeText("URGENT UPDATE")
	if !got.HasEmphasis {
		t.Error("expected emphasis")
	}
	if got.ContentType != model.ContentTypePlain {
		t.Errorf("content type = %v, want plain", got.ContentType)
	}
}

func TestProcessDeck(t *testing.T) {
	deck := model.NewDeck("Launch Review",
		"Launch Review\nSpring 2025\nPrepared by the platform team",
		"the team worked through the spring milestones\nTimeline:\nkickoff in March\nbeta in May",
	)

	styled := ProcessDeck(deck, testTemplate())

	if styled.TemplateName != "test" {
		t.Errorf("template name = %q, want test", styled.TemplateName)
	}
	if len(styled.Slides) != 2 {
		t.Fatalf("slides = %d, want 2", len(styled.Slides))
	}

	first := styled.Slides[0]
	if first.LayoutType != model.LayoutTypeTitle {
		t.Errorf("first slide layout = %v, want TITLE", first.LayoutType)
	}
	if first.BackgroundColor != "#ffffff" {
		t.Errorf("background = %q, want #ffffff", first.BackgroundColor)
	}
	if first.Elements[0].Role != model.RoleTitle || first.Elements[1].Role != model.RoleSubtitle {
		t.Errorf("first slide roles = %v, %v", first.Elements[0].Role, first.Elements[1].Role)
	}

	second := styled.Slides[1]
	if second.LayoutType != model.LayoutTypeContent {
		t.Errorf("second slide layout = %v, want CONTENT", second.LayoutType)
	}
	if len(second.Elements) != 3 {
		t.Fatalf("second slide elements = %d, want 3", len(second.Elements))
	}
	if second.Elements[1].Role != model.RoleHeading {
		t.Errorf("second slide roles = %v, want HEADING after the opening paragraph", second.Elements[1].Role)
	}
}

func TestRefineAndStyle(t *testing.T) {
	elements := []model.Element{
		{Content: "closing note", Position: model.NewRect(0, 380, 600, 20)},
		{Content: "PLATFORM HEALTH", Position: model.NewRect(0, 20, 600, 40)},
		{Content: "1. Stabilize the pipeline\n2. Cut build times", Position: model.NewRect(0, 120, 600, 200)},
	}

	styled := RefineAndStyle(elements, testTemplate(), model.LayoutTypeContent)

	if len(styled) != 3 {
		t.Fatalf("expected 3 styled elements, got %d", len(styled))
	}
	if styled[0].Role != model.RoleTitle || styled[0].Content != "PLATFORM HEALTH" {
		t.Errorf("topmost = %+v, want TITLE", styled[0])
	}
	if styled[2].Role != model.RoleFooter || styled[2].Content != "closing note" {
		t.Errorf("bottom = %+v, want FOOTER", styled[2])
	}
	if !styled[1].IsList {
		t.Errorf("middle element = %+v, want list", styled[1])
	}
}

func TestRenderComponents(t *testing.T) {
	components := segment.SplitSlideText("Quarterly Report\nQ4 2024\nRevenue grew.", 0)

	rendered := RenderComponents(components)

	want := "[TITLE] Quarterly Report\n\n[SUBTITLE] Q4 2024\n\n[BODY] Revenue grew."
	if rendered != want {
		t.Errorf("rendered = %q, want %q", rendered, want)
	}
}

func TestProcessSlide_CoversAllInputLines(t *testing.T) {
	text := "Roadmap Review\nPhase one is done\nPhase Two:\nstabilize\nscale\n1. Hire\n2. Train"

	components := segment.SplitSlideText(text, 1)

	var covered []string
	for _, c := range components {
		for _, line := range strings.Split(c.Content, "\n") {
			covered = append(covered, line)
		}
	}

	// Every non-empty input line appears in exactly one component, in
	// source order (modulo canonical list markers).
	if len(covered) != 7 {
		t.Fatalf("covered %d lines, want 7: %v", len(covered), covered)
	}
	if covered[0] != "Roadmap Review" || covered[len(covered)-1] != "• Train" {
		t.Errorf("coverage order broken: %v", covered)
	}
}
