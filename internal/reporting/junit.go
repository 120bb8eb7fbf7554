package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/persuasion-games/persuade/internal/models"
)

// JUnit XML schema types. One testsuite per scenario, one testcase per run;
// an invalid scheme maps to a failure so CI dashboards surface it.

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one scenario.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one run.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure marks a run whose scheme was rejected.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts an experiment outcome to JUnit XML form.
func ConvertToJUnit(outcome *models.ExperimentOutcome) *JUnitTestSuites {
	suites := &JUnitTestSuites{
		Tests: outcome.TotalRuns,
		Time:  float64(outcome.DurationMs) / 1000.0,
	}

	for _, sc := range outcome.Scenarios {
		suite := JUnitTestSuite{
			Name:      sc.Scenario,
			Tests:     sc.Aggregate.TotalRuns,
			Failures:  sc.Aggregate.TotalRuns - sc.Aggregate.ValidRuns,
			Timestamp: outcome.Timestamp.Format(time.RFC3339),
			Properties: []JUnitProperty{
				{Name: "provider", Value: outcome.Provider},
				{Name: "svr", Value: fmt.Sprintf("%.4f", sc.Aggregate.SchemeValidityRate)},
				{Name: "u_theoretical_optimum", Value: fmt.Sprintf("%.4f", sc.OptimumUtility)},
			},
		}

		for _, rec := range sc.Records {
			tc := JUnitTestCase{
				Name:      fmt.Sprintf("%s/run-%d", rec.Scenario, rec.Run),
				Classname: rec.Scenario,
				Time:      float64(rec.DurationMs) / 1000.0,
			}
			if !rec.IsValidScheme {
				tc.Failure = &JUnitFailure{
					Message: fmt.Sprintf("invalid scheme: %s", rec.Rejection),
					Type:    "SchemeInvalid",
				}
			}
			suite.TestCases = append(suite.TestCases, tc)
		}

		suites.Failures += suite.Failures
		suites.TestSuites = append(suites.TestSuites, suite)
	}

	return suites
}

// WriteJUnitFile writes the outcome as a JUnit XML file.
func WriteJUnitFile(path string, outcome *models.ExperimentOutcome) error {
	data, err := xml.MarshalIndent(ConvertToJUnit(outcome), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling junit xml: %w", err)
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
