package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-causal/pkg/dsep"
	"github.com/dd0wney/cluso-causal/pkg/graph"
	"github.com/dd0wney/cluso-causal/pkg/identify"
	"github.com/dd0wney/cluso-causal/pkg/logging"
	"github.com/dd0wney/cluso-causal/pkg/validation"
)

// Styles for the identification report
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	formulaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)
)

// ModelFile is the YAML input schema: a causal graph plus the intervention
// query to analyze against it
type ModelFile struct {
	Name  string            `yaml:"name,omitempty"`
	Graph graph.CausalGraph `yaml:"graph"`
	Query QueryFile         `yaml:"query"`
}

// QueryFile names the treatment and outcome variables
type QueryFile struct {
	Interventions []string `yaml:"interventions"`
	Outcomes      []string `yaml:"outcomes"`
	Conditioning  []string `yaml:"conditioning,omitempty"`
}

func main() {
	modelPath := flag.String("model", "", "Path to YAML causal model file (required)")
	explain := flag.Bool("explain", false, "Show per-path d-separation evidence")
	flag.Parse()

	logger := logging.NewDefaultLogger()

	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: causal -model <file.yaml> [-explain]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	model, err := loadModel(*modelPath)
	if err != nil {
		logger.Error("failed to load model", logging.Error(err), logging.String("path", *modelPath))
		fmt.Fprintf(os.Stderr, "%s %v\n", failStyle.Render("✗"), err)
		os.Exit(2)
	}

	if err := validation.ValidateGraph(&model.Graph); err != nil {
		logger.Error("graph validation failed", logging.Error(err))
		fmt.Fprintf(os.Stderr, "%s invalid graph: %v\n", failStyle.Render("✗"), err)
		os.Exit(2)
	}
	queryReq := &validation.QueryRequest{
		Interventions: model.Query.Interventions,
		Outcomes:      model.Query.Outcomes,
		Conditioning:  model.Query.Conditioning,
	}
	if err := validation.ValidateQuery(&model.Graph, queryReq); err != nil {
		logger.Error("query validation failed", logging.Error(err))
		fmt.Fprintf(os.Stderr, "%s invalid query: %v\n", failStyle.Render("✗"), err)
		os.Exit(2)
	}

	logger.Info("analyzing intervention",
		logging.GraphID(model.Graph.ID),
		logging.Variables("interventions", model.Query.Interventions),
		logging.Variables("outcomes", model.Query.Outcomes),
	)

	req := identify.AnalysisRequest{Outcomes: model.Query.Outcomes}
	for _, v := range model.Query.Interventions {
		req.Interventions = append(req.Interventions, identify.Intervention{
			Variable: v,
			Type:     identify.InterventionAtomic,
		})
	}

	start := time.Now()
	result := identify.AnalyzeIntervention(&model.Graph, req)
	elapsed := time.Since(start)

	logger.Info("analysis complete",
		logging.Identifiable(result.Identifiable),
		logging.Method(string(result.Method)),
		logging.Duration("elapsed", elapsed),
	)

	printReport(model, result)
	if *explain {
		printEvidence(model, result)
	}

	if !result.Identifiable {
		os.Exit(1)
	}
}

func loadModel(path string) (*ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	var model ModelFile
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	return &model, nil
}

func printReport(model *ModelFile, result identify.AnalysisResult) {
	name := model.Name
	if name == "" {
		name = "causal model"
	}
	fmt.Println(titleStyle.Render("Causal Identification Report — " + name))
	fmt.Println()

	fmt.Println(sectionStyle.Render("Model"))
	fmt.Printf("  Variables: %d   Edges: %d\n", len(model.Graph.Nodes), len(model.Graph.Edges))
	fmt.Printf("  Query: effect of do(%s) on %s\n",
		strings.Join(model.Query.Interventions, ","),
		strings.Join(model.Query.Outcomes, ","))
	fmt.Println(mutedStyle.Render("  Observational: " + result.OriginalDistribution))
	fmt.Println()

	fmt.Println(sectionStyle.Render("Result"))
	if !result.Identifiable {
		fmt.Printf("  %s\n", failStyle.Render("NOT IDENTIFIABLE"))
		fmt.Printf("  Reason: %s\n", result.NonIdentifiableReason)
		return
	}

	fmt.Printf("  %s via %s\n", successStyle.Render("IDENTIFIABLE"), result.Method)
	if result.Adjustment != nil {
		switch result.Method {
		case identify.MethodBackdoor:
			if len(result.Adjustment.AdjustmentSet) == 0 {
				fmt.Println("  Adjustment set: ∅ (no confounding to block)")
			} else {
				fmt.Printf("  Adjustment set: {%s}\n", strings.Join(result.Adjustment.AdjustmentSet, ", "))
			}
		case identify.MethodFrontdoor:
			fmt.Printf("  Mediators: {%s}\n", strings.Join(result.Adjustment.AdjustmentSet, ", "))
		case identify.MethodInstrumental:
			fmt.Printf("  Instrument: %s\n", strings.Join(result.Adjustment.AdjustmentSet, ", "))
		}
	}
	fmt.Println()
	fmt.Println(sectionStyle.Render("Estimand"))
	fmt.Println(formulaStyle.Render(result.Estimand))
	if result.Adjustment != nil && result.Adjustment.Latex != "" {
		fmt.Println(mutedStyle.Render("  LaTeX: " + result.Adjustment.Latex))
	}
}

// printEvidence walks the backdoor paths for each treatment/outcome pair and
// shows which are blocked by the chosen adjustment set and why
func printEvidence(model *ModelFile, result identify.AnalysisResult) {
	var adjustment []string
	if result.Method == identify.MethodBackdoor && result.Adjustment != nil {
		adjustment = result.Adjustment.AdjustmentSet
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Evidence"))
	for _, x := range model.Query.Interventions {
		for _, y := range model.Query.Outcomes {
			backdoor := dsep.BackdoorPaths(&model.Graph, x, y)
			if len(backdoor) == 0 {
				fmt.Printf("  %s ⇒ %s: no backdoor paths\n", x, y)
				continue
			}

			fmt.Printf("  %s ⇒ %s: %d backdoor path(s)\n", x, y, len(backdoor))
			for _, p := range backdoor {
				block := dsep.IsPathBlocked(&model.Graph, p, adjustment)
				route := strings.Join(p.Nodes, " - ")
				if block.Blocked {
					fmt.Printf("    %s %s\n      %s\n",
						successStyle.Render("blocked"), route, mutedStyle.Render(block.Reason))
				} else {
					fmt.Printf("    %s %s\n", failStyle.Render("open   "), route)
				}
			}
		}
	}
}
