// Package websearch provides supplementary question sources that
// stand in for a live web search. Questions come from role and
// company-profile templates; no network is touched.
package websearch

import (
	"context"
	"fmt"
	"strings"

	"interview-prep/internal/domain"
)

// TemplateProvider generates company-specific question records from
// a fixed template set, tailored by the company's hiring profile.
type TemplateProvider struct{}

// NewTemplateProvider creates a new TemplateProvider.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// FetchSupplementary implements domain.SupplementaryProvider.
func (p *TemplateProvider) FetchSupplementary(ctx context.Context, company, role, category string, max int) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questions := companyQuestions(company)
	for _, focus := range ProfileFor(company).Focus {
		questions = append(questions, focusQuestion(company, focus))
	}
	questions = append(questions, genericQuestions()...)

	if category != "" {
		var filtered []domain.Question
		for _, q := range questions {
			if strings.EqualFold(q.Category, category) {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	if max > 0 && len(questions) > max {
		questions = questions[:max]
	}
	return questions, nil
}

func companyQuestions(company string) []domain.Question {
	source := fmt.Sprintf("Custom for %s", company)
	return []domain.Question{
		{
			Question:   fmt.Sprintf("How would you design a Selenium framework for %s's web applications?", company),
			Answer:     fmt.Sprintf("Framework design for %s:\n1. Page Object Model implementation\n2. Custom wait strategies\n3. Reporting and logging\n4. Data-driven approach\n5. CI/CD integration\n6. Cross-browser testing\n7. Error handling and recovery", company),
			Category:   "Selenium",
			Difficulty: "Medium",
			Type:       "Technical",
			Source:     source,
		},
		{
			Question:   fmt.Sprintf("What automation challenges would you expect at %s and how would you handle them?", company),
			Answer:     fmt.Sprintf("Expected challenges at %s:\n1. Dynamic UI elements handling\n2. Test data management\n3. Environment synchronization\n4. Performance considerations\n5. Cross-browser compatibility\n6. CI/CD pipeline integration\n7. Maintenance and scalability", company),
			Category:   "Selenium",
			Difficulty: "Medium",
			Type:       "Technical",
			Source:     source,
		},
		{
			Question:   fmt.Sprintf("How would you implement parallel test execution for %s's test suite?", company),
			Answer:     "Parallel execution strategy:\n1. TestNG parallel execution\n2. Thread management\n3. Resource allocation\n4. Data isolation\n5. Report aggregation\n6. Grid setup\n7. Load balancing",
			Category:   "Selenium",
			Difficulty: "Medium",
			Type:       "Technical",
			Source:     source,
		},
	}
}

func focusQuestion(company, focus string) domain.Question {
	return domain.Question{
		Question:   fmt.Sprintf("Explain your experience with %s testing", focus),
		Answer:     fmt.Sprintf("%s testing approach:\n1. Test strategy\n2. Tool selection\n3. Implementation methods\n4. Best practices\n5. Common challenges", titleCase(focus)),
		Category:   titleCase(focus),
		Difficulty: "Medium",
		Type:       "Technical",
		Source:     fmt.Sprintf("Custom for %s", company),
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func genericQuestions() []domain.Question {
	return []domain.Question{
		{
			Question:   "Explain how to handle dynamic web elements in Selenium",
			Answer:     "To handle dynamic elements:\n1. Use explicit waits\n2. Implement proper synchronization\n3. Use dynamic XPath/CSS selectors\n4. Handle StaleElementException\n5. Implement retry mechanisms",
			Category:   "Selenium",
			Difficulty: "Medium",
			Type:       "Technical",
		},
		{
			Question:   "What are the different types of waits in Selenium?",
			Answer:     "Selenium waits include:\n1. Implicit wait\n2. Explicit wait\n3. Fluent wait\n4. PageLoadTimeout\n5. Custom wait conditions",
			Category:   "Selenium",
			Difficulty: "Basic",
			Type:       "Technical",
		},
		{
			Question:   "How do you handle iframes in Selenium?",
			Answer:     "Handling iframes:\n1. Switch to frame using ID/name\n2. Switch using index\n3. Switch using WebElement\n4. Return to default content\n5. Handle nested frames",
			Category:   "Selenium",
			Difficulty: "Basic",
			Type:       "Technical",
		},
	}
}
