package service

import (
	"career_advisor_backend/internal/model"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type experienceTier int

const (
	tierBeginner experienceTier = iota
	tierIntermediate
	tierAdvanced
)

func (t experienceTier) String() string {
	switch t {
	case tierBeginner:
		return "beginner"
	case tierIntermediate:
		return "intermediate"
	default:
		return "advanced"
	}
}

type tierRule struct {
	tier  experienceTier
	match func(level string) bool
}

// 表单中的年限选项："0-1 years"、"2-3 years"、"5+ years"
var yearsPattern = regexp.MustCompile(`^\s*(\d+)\s*(?:-\s*\d+\s*|\+\s*)?(?:years?|yrs?)\b`)

func leadingYears(level string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(level)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// tierRules 按顺序匹配，先命中者生效；都不命中为 advanced
var tierRules = []tierRule{
	{tierBeginner, containsAny("beginner", "entry", "junior")},
	{tierIntermediate, containsAny("intermediate", "mid")},
	{tierBeginner, func(level string) bool {
		years, ok := leadingYears(level)
		return ok && years <= 1
	}},
	{tierIntermediate, func(level string) bool {
		years, ok := leadingYears(level)
		return ok && years < 5
	}},
}

func containsAny(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, k := range keywords {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

// classifyExperience level 需已转为小写
func classifyExperience(level string) experienceTier {
	for _, rule := range tierRules {
		if rule.match(level) {
			return rule.tier
		}
	}
	return tierAdvanced
}

func baseAdvice(tier experienceTier, careerField string) string {
	switch tier {
	case tierBeginner:
		return fmt.Sprintf("For someone just starting in %s, focus on building foundational skills through online courses and tutorials. Create small projects to apply what you learn, and consider joining communities or forums related to %s to connect with others in the field.", careerField, careerField)
	case tierIntermediate:
		return fmt.Sprintf("With your intermediate experience in %s, now is a great time to work on more complex projects that demonstrate your skills. Consider contributing to open-source projects, attending industry workshops, and expanding your professional network. Focus on specializing in specific areas of %s that interest you most.", careerField, careerField)
	default:
		return fmt.Sprintf("As an experienced professional in %s, focus on leadership opportunities, mentoring juniors, and staying at the cutting edge of industry trends. Consider speaking at conferences, writing technical articles, or developing innovative projects that showcase your expertise. Your goal should be to become recognized as a thought leader in your specialization.", careerField)
	}
}

type fallbackInput struct {
	question    string
	careerField string
	skills      string
	base        string
}

type questionRule struct {
	match  func(question string) bool
	render func(in fallbackInput) string
}

// questionRules 按顺序匹配追问关键词，先命中者生效
var questionRules = []questionRule{
	{
		match: containsAny("certification", "course"),
		render: func(in fallbackInput) string {
			return fmt.Sprintf("Regarding your question about %s, certifications can significantly boost your credentials in %s. Look for industry-recognized certifications that align with your career goals and current skill level. %s", in.question, in.careerField, in.base)
		},
	},
	{
		match: containsAny("salary", "pay", "compensation"),
		render: func(in fallbackInput) string {
			return fmt.Sprintf("About your question on %s, salary in %s varies based on location, experience, and specialization. To maximize your earning potential, focus on in-demand skills like %s and consider specializing in high-growth areas. %s", in.question, in.careerField, in.skills, in.base)
		},
	},
	{
		match: containsAny("interview", "resume", "hiring"),
		render: func(in fallbackInput) string {
			return fmt.Sprintf("Regarding your question about %s, make sure your resume highlights your experience with %s. In interviews for %s positions, be prepared to discuss practical examples of your work and how you've solved problems. %s", in.question, in.skills, in.careerField, in.base)
		},
	},
}

// FallbackAdvice 补全服务不可用或配额耗尽时的模板建议，结果只取决于输入
func FallbackAdvice(goal model.CareerGoal, question *string) string {
	careerField := strings.ToLower(goal.Goal)
	experience := strings.ToLower(goal.ExperienceLevel)
	base := baseAdvice(classifyExperience(experience), careerField)

	if question == nil {
		return fmt.Sprintf("Based on your goal to become a %s with skills in %s and %s experience: %s Focus on strengthening your skills in %s through practical projects and continuous learning.", careerField, goal.Skills, experience, base, goal.Skills)
	}

	in := fallbackInput{
		question:    *question,
		careerField: careerField,
		skills:      goal.Skills,
		base:        base,
	}
	lowered := strings.ToLower(*question)
	for _, rule := range questionRules {
		if rule.match(lowered) {
			return rule.render(in)
		}
	}

	return fmt.Sprintf("Regarding your question about \"%s\" for your career as a %s: %s Additionally, continue to develop your skills in %s as these are crucial for success in this field.", *question, careerField, base, goal.Skills)
}
