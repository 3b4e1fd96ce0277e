package service

import (
	"career_advisor_backend/internal/model"
	"fmt"
	"strings"
)

const (
	TrackFrontend = "frontend"
	TrackData     = "data"
	TrackGeneric  = "generic"
)

var frontendTrack = model.Steps{
	{
		Icon:        model.IconLayout,
		Title:       "HTML & CSS Fundamentals",
		Description: "Master the building blocks of web development.",
		Skills:      []string{"HTML5", "CSS3", "Responsive Design"},
	},
	{
		Icon:        model.IconCode,
		Title:       "JavaScript Proficiency",
		Description: "Build interactive and dynamic web experiences.",
		Skills:      []string{"JavaScript ES6+", "DOM Manipulation", "Async Programming"},
	},
	{
		Icon:        model.IconPackage,
		Title:       "Framework Expertise",
		Description: "Learn modern frontend frameworks and libraries.",
		Skills:      []string{"React.js", "State Management", "Component Architecture"},
	},
	{
		Icon:        model.IconWrench,
		Title:       "Advanced Frontend Skills",
		Description: "Enhance your applications with advanced techniques.",
		Skills:      []string{"Performance Optimization", "Animations", "Testing"},
	},
}

var dataTrack = model.Steps{
	{
		Icon:        model.IconDatabase,
		Title:       "Data Fundamentals",
		Description: "Build a strong foundation in data concepts and tools.",
		Skills:      []string{"SQL", "Data Structures", "Statistics"},
	},
	{
		Icon:        model.IconBarChart,
		Title:       "Data Analysis & Visualization",
		Description: "Learn to extract insights and communicate findings.",
		Skills:      []string{"Python/R", "Data Visualization", "Exploratory Analysis"},
	},
	{
		Icon:        model.IconCPU,
		Title:       "Machine Learning",
		Description: "Apply algorithms to solve complex problems.",
		Skills:      []string{"Supervised Learning", "Unsupervised Learning", "Model Evaluation"},
	},
	{
		Icon:        model.IconTrendingUp,
		Title:       "Advanced Data Science",
		Description: "Develop expertise in specific data science domains.",
		Skills:      []string{"Deep Learning", "NLP", "Production ML Systems"},
	},
}

var genericTrack = model.Steps{
	{
		Icon:        model.IconBook,
		Title:       "Foundations",
		Description: "Master the core concepts and tools required for your field.",
		Skills:      []string{"Core Principles", "Industry Standards", "Basic Tools"},
	},
	{
		Icon:        model.IconCode,
		Title:       "Technical Skills",
		Description: "Build technical expertise specific to your career goal.",
		Skills:      []string{"Technical Foundation", "Practical Applications", "Problem Solving"},
	},
	{
		Icon:        model.IconBriefcase,
		Title:       "Professional Experience",
		Description: "Apply your knowledge in real-world scenarios.",
		Skills:      []string{"Portfolio Building", "Professional Networking", "Industry Collaboration"},
	},
	{
		Icon:        model.IconAward,
		Title:       "Specialization",
		Description: "Develop expertise in a specific area of your field.",
		Skills:      []string{"Advanced Techniques", "Specialized Tools", "Expert Knowledge"},
	},
}

type track struct {
	name    string
	keyword string
	steps   model.Steps
}

// tracks 按顺序做子串匹配，先命中者生效（frontend 先于 data）
var tracks = []track{
	{name: TrackFrontend, keyword: "frontend", steps: frontendTrack},
	{name: TrackData, keyword: "data", steps: dataTrack},
}

func selectTrack(goal string) (string, model.Steps) {
	lowered := strings.ToLower(goal)
	for _, t := range tracks {
		if strings.Contains(lowered, t.keyword) {
			return t.name, t.steps
		}
	}
	return TrackGeneric, genericTrack
}

// TrackFor 返回目标文本对应的路线名
func TrackFor(goal string) string {
	name, _ := selectTrack(goal)
	return name
}

// SynthesizeSteps 纯函数，每次返回独立副本
func SynthesizeSteps(goal string) model.Steps {
	_, steps := selectTrack(goal)
	return steps.Clone()
}

// SynthesizePath 生成学习路径的标题、描述与步骤（未分配 ID）
func SynthesizePath(goal string) model.LearningPath {
	return model.LearningPath{
		Title:       fmt.Sprintf("Learning Path for %s", goal),
		Description: fmt.Sprintf("Personalized learning path for becoming a %s", goal),
		Steps:       SynthesizeSteps(goal),
	}
}
