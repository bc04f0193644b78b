package catalog

import "github.com/jonathan/career-advisor/internal/types"

var defaultSkills = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node",
	"sql", "mongodb", "aws", "azure", "docker", "kubernetes",
	"machine learning", "ai", "data science", "analytics",
	"project management", "agile", "scrum", "leadership",
	"communication", "problem solving", "teamwork",
}

var defaultBiasTerms = []string{
	"he", "she", "him", "her", "his", "hers", "male", "female",
	"boy", "girl", "man", "woman", "gentleman", "lady",
}

var defaultActionKeywords = []string{
	"experience", "project", "managed", "led", "developed", "achieved", "improved",
}

var defaultJobs = []types.Job{
	{ID: 1, Title: "Senior Software Engineer", Company: "TechCorp", Location: "San Francisco", Skills: "python javascript react aws docker", Salary: "120k-180k"},
	{ID: 2, Title: "Data Scientist", Company: "DataAI Inc", Location: "New York", Skills: "python machine learning sql data science", Salary: "100k-150k"},
	{ID: 3, Title: "Frontend Developer", Company: "WebStudio", Location: "Remote", Skills: "javascript react vue css html", Salary: "80k-120k"},
	{ID: 4, Title: "DevOps Engineer", Company: "CloudSys", Location: "Seattle", Skills: "aws azure docker kubernetes linux", Salary: "110k-160k"},
	{ID: 5, Title: "Full Stack Developer", Company: "StartupX", Location: "Austin", Skills: "python javascript react node mongodb", Salary: "90k-140k"},
	{ID: 6, Title: "ML Engineer", Company: "AI Solutions", Location: "Boston", Skills: "python machine learning ai tensorflow pytorch", Salary: "130k-190k"},
	{ID: 7, Title: "Project Manager", Company: "ConsultPro", Location: "Chicago", Skills: "project management agile scrum leadership", Salary: "95k-145k"},
	{ID: 8, Title: "Backend Developer", Company: "ApiMasters", Location: "Denver", Skills: "java python sql mongodb aws", Salary: "85k-135k"},
}

var defaultCourses = []types.Course{
	{ID: 1, Title: "Complete Python Bootcamp", Platform: "Udemy", Duration: "40 hours", Price: "$89", Skills: "python programming basics"},
	{ID: 2, Title: "React - The Complete Guide", Platform: "Udemy", Duration: "48 hours", Price: "$99", Skills: "react javascript frontend"},
	{ID: 3, Title: "Machine Learning Specialization", Platform: "Coursera", Duration: "3 months", Price: "$49/month", Skills: "machine learning ai python"},
	{ID: 4, Title: "AWS Certified Solutions Architect", Platform: "Udemy", Duration: "30 hours", Price: "$109", Skills: "aws cloud docker"},
	{ID: 5, Title: "Data Science Professional Certificate", Platform: "Coursera", Duration: "6 months", Price: "$49/month", Skills: "data science sql python analytics"},
	{ID: 6, Title: "Project Management Professional", Platform: "Udemy", Duration: "35 hours", Price: "$79", Skills: "project management agile leadership"},
}

var defaultRoles = map[string][]string{
	"software_engineer":  {"python", "javascript", "react", "sql", "aws"},
	"data_scientist":     {"python", "machine learning", "sql", "data science", "analytics"},
	"frontend_developer": {"javascript", "react", "vue", "css", "html"},
	"devops_engineer":    {"aws", "docker", "kubernetes", "linux", "azure"},
	"ml_engineer":        {"python", "machine learning", "ai", "tensorflow", "pytorch"},
}

var defaultSalaryTrends = []types.SalaryTrend{
	{Role: "Software Engineer", AvgSalary: 140000},
	{Role: "Data Scientist", AvgSalary: 125000},
	{Role: "Frontend Developer", AvgSalary: 100000},
	{Role: "DevOps Engineer", AvgSalary: 135000},
}

var defaultTopSkills = []types.SkillDemand{
	{Skill: "Python", Demand: 95},
	{Skill: "JavaScript", Demand: 88},
	{Skill: "React", Demand: 82},
	{Skill: "AWS", Demand: 78},
	{Skill: "Machine Learning", Demand: 85},
}
