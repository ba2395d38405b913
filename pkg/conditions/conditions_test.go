package conditions

import (
	"testing"

	"github.com/agentpress/agentpress/models"
)

func testData() (*models.Agent, *models.LocationData) {
	agent := &models.Agent{
		Name:        "Maria Santos",
		AreasServed: []string{"Austin", "Round Rock", "Cedar Park"},
		Rating:      &models.Rating{Value: 4.9, Count: 1200},
		FAQs:        []models.FAQ{{Question: "Q", Answer: "A"}},
	}
	city := &models.LocationData{
		Name:            "Austin",
		MedianHomePrice: 550000,
		Neighborhoods: []models.Neighborhood{
			{Name: "Mueller"}, {Name: "East Austin"},
		},
		Demographics: &models.Demographics{MedianIncome: 86000},
	}
	return agent, city
}

func TestCompileExists(t *testing.T) {
	agent, city := testData()

	tests := []struct {
		expr string
		want bool
	}{
		{"agent.name", true},
		{"agent.phone", false},
		{"agent.rating.value", true},
		{"cityData.name", true},
		{"cityData.medianHomePrice", true},
		{"cityData.medianRent", false},
		{"cityData.schools", false},
		{"cityData.neighborhoods", true},
		{"cityData.demographics", true},
		{"cityData.demographics.medianAge", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			expr := Compile(tt.expr)
			if w := expr.Warning(); w != "" {
				t.Fatalf("Compile(%q) unexpectedly fell back: %s", tt.expr, w)
			}
			if got := expr.Eval(agent, city); got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestCompileLengthCompare(t *testing.T) {
	agent, city := testData()

	tests := []struct {
		expr string
		want bool
	}{
		{"agent.areasServed.length > 0", true},
		{"agent.areasServed.length > 3", false},
		{"agent.areasServed.length >= 3", true},
		{"agent.areasServed.length < 5", true},
		{"agent.areasServed.length <= 2", false},
		{"agent.areasServed.length == 3", true},
		{"agent.areasServed.length != 3", false},
		{"cityData.neighborhoods.length > 1", true},
		{"cityData.schools.length > 0", false},
		{"agent.faqs.length > 0", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			expr := Compile(tt.expr)
			if w := expr.Warning(); w != "" {
				t.Fatalf("Compile(%q) unexpectedly fell back: %s", tt.expr, w)
			}
			if got := expr.Eval(agent, city); got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestCompileEmptyIsTautology(t *testing.T) {
	expr := Compile("")
	if !expr.Eval(nil, nil) {
		t.Error("empty condition should always render")
	}
	if expr.Warning() != "" {
		t.Errorf("empty condition should carry no warning, got %q", expr.Warning())
	}
}

func TestCompileFailOpen(t *testing.T) {
	agent, city := testData()

	bad := []string{
		"bogusScope.name",
		"agent",
		"agent.areasServed.length ~ 3",
		"agent.areasServed.length > banana",
		"agent.areasServed > 3",
		"too many tokens in this expression",
	}

	for _, expr := range bad {
		t.Run(expr, func(t *testing.T) {
			compiled := Compile(expr)
			if compiled == nil {
				t.Fatal("Compile returned nil")
			}
			if !compiled.Eval(agent, city) {
				t.Errorf("unparsable condition %q must render the section", expr)
			}
			if compiled.Warning() == "" {
				t.Errorf("unparsable condition %q must carry a warning", expr)
			}
		})
	}
}

func TestEvalNilInputs(t *testing.T) {
	if Compile("agent.name").Eval(nil, nil) {
		t.Error("agent.name should be false with a nil agent")
	}
	if Compile("cityData.neighborhoods.length > 0").Eval(nil, nil) {
		t.Error("length check should be false with nil cityData")
	}
}
