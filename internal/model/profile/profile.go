package profile

// Role is one entry of the subject's work history.
type Role struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Period  string   `json:"period"`
	Notes   []string `json:"notes,omitempty"`
}

// Project is one featured portfolio project.
type Project struct {
	Name         string   `json:"name"`
	Highlights   []string `json:"highlights,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Repo         string   `json:"repo,omitempty"`
}

// SkillGroup clusters related skills under one area label.
type SkillGroup struct {
	Area  string   `json:"area"`
	Items []string `json:"items"`
}

// Profile is the static knowledge base about the portfolio's subject. It is
// immutable configuration data consumed by both responder strategies.
type Profile struct {
	Name           string       `json:"name"`
	Headline       string       `json:"headline"`
	Greeting       string       `json:"greeting"`
	Background     []string     `json:"background,omitempty"`
	Education      []string     `json:"education,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
	Experience     []Role       `json:"experience,omitempty"`
	Skills         []SkillGroup `json:"skills,omitempty"`
	Projects       []Project    `json:"projects,omitempty"`
	Achievements   []string     `json:"achievements,omitempty"`
}

// Seed returns the profile rendered by the portfolio site.
func Seed() *Profile {
	return &Profile{
		Name:     "Syam",
		Headline: "AI engineer specializing in Computer Vision, Deep Learning, and Autonomous Systems",
		Greeting: "Hi! I'm Syam's AI assistant. How can I help you today?",
		Background: []string{
			"MS in Computer Science student at Governors State University, Chicago (Aug 2024 - May 2026)",
			"5+ years of industry experience in AI, Machine Learning, and Embedded Systems",
			"Passionate AI engineer specializing in Computer Vision, Deep Learning, and Autonomous Systems",
			"5-star HackerRank rating with 700+ problems solved",
			"Drone Engineering Club Leader at Governors State University (Jan 2025 - April 2026)",
		},
		Education: []string{
			"MS in Computer Science, Governors State University, Chicago (Aug 2024 - May 2026)",
			"Coursework: AI Foundations, Advanced Operating Systems, Reinforcement Learning, Algorithms",
		},
		Certifications: []string{
			"Machine Learning Specialization",
			"Deep Learning Specialization",
			"Computer Vision with OpenCV",
			"TensorFlow Developer Certificate",
		},
		Experience: []Role{
			{
				Title:   "Drone Engineering Club Leader",
				Company: "Governors State University",
				Period:  "Jan 2025 - April 2026",
				Notes: []string{
					"Leading team of 20+ members in drone engineering projects",
					"Organizing workshops on drone programming, computer vision, autonomous navigation",
					"Mentoring students in computer vision algorithms for real-time object detection",
					"Implemented gesture-based drone control using MediaPipe and Python",
				},
			},
			{
				Title:   "Machine Learning Engineer / R&D Engineer",
				Company: "Medha Servo Drives Pvt Ltd",
				Period:  "Aug 2023 - July 2024",
				Notes: []string{
					"Trained computer vision models for drone airfield recognition (90% F1 score)",
					"Designed drone navigation algorithms using YOLOv8 with Intel RealSense",
					"Improved pose estimation precision to within 5cm during flight tests",
					"Developed custom object detection models (85% IoU, 90% F1 score)",
					"Reduced processing time by 40% through lightweight model architectures",
				},
			},
			{
				Title:   "Machine Learning Engineer",
				Company: "Updater Services Pvt Ltd",
				Period:  "Nov 2021 - Aug 2022",
				Notes: []string{
					"Developed Optical Flow models using Transformers for high-speed autonomous systems",
					"Generated diverse frame rate datasets using 120+ GPU cluster",
					"Conducted research on error rates correlated to frame rates",
				},
			},
			{
				Title:   "Embedded Software Engineer Trainee",
				Company: "Alstom",
				Period:  "July 2018 - Aug 2021",
				Notes: []string{
					"Verified embedded train control software for Kochi Metro and Chennai Metro",
					"Executed comprehensive testing protocols for Main Processing Unit software",
					"Ensured safety compliance for public transportation systems",
				},
			},
		},
		Skills: []SkillGroup{
			{Area: "Languages", Items: []string{"Python", "C", "C++", "Java", "SQL"}},
			{Area: "Frameworks", Items: []string{"PyTorch", "TensorFlow", "OpenCV", "YOLOv8", "Scikit-learn", "Flask", "Pandas", "NumPy", "LangChain"}},
			{Area: "AI/ML", Items: []string{"Deep Learning", "Computer Vision", "Neural Networks", "CNN", "RNN", "Transformers", "LLMs", "RAG", "Reinforcement Learning"}},
			{Area: "Specializations", Items: []string{"Object Detection", "Image Segmentation", "Pose Estimation", "Optical Flow", "Autonomous Systems"}},
			{Area: "Technologies", Items: []string{"Docker", "AWS", "GCP", "Git", "MLflow", "Linux", "FAISS", "Streamlit"}},
		},
		Projects: []Project{
			{
				Name: "Multi-Environment Decision Making - Autonomous Driving Agent",
				Highlights: []string{
					"Created autonomous driving agent for tactical decisions in traffic",
					"Used custom encoder-decoder policy network with Double DQN",
					"18% improvement in decision accuracy",
				},
				Technologies: []string{"Python", "PyTorch", "OpenAI", "Double DQN", "HPC"},
			},
			{
				Name: "AI Chatbot & Document Intelligence Platform",
				Highlights: []string{
					"Sophisticated AI chatbot with OpenAI Q&A capabilities",
					"Document Intelligence Platform with RAG using LangChain and FAISS",
					"Groq Llama-3.1 integration for document Q&A",
				},
				Technologies: []string{"Python", "LangChain", "OpenAI", "RAG", "Streamlit", "FAISS"},
				Repo:         "https://github.com/Syam-1133/Syam-s-AI-Powered-Chatbot-and-Document-Intelligence-Platform",
			},
			{
				Name: "Math Gesture Problem Solver",
				Highlights: []string{
					"AI-driven hand gesture recognition using OpenCV and Google Gemini AI",
					"Processes handwritten math problems in real-time",
					"Response time under 100ms with OOP architecture",
				},
				Technologies: []string{"Python", "OpenCV", "Gemini AI", "Computer Vision", "LLM"},
				Repo:         "https://github.com/Syam-1133/Math-Gesture-Problem-Solver-Controlled-AI-Assistant",
			},
			{
				Name: "Amazon Recommender System",
				Highlights: []string{
					"Data analytics engine for 514K+ products and 7M+ reviews",
					"Advanced search and collaborative filtering recommendations",
					"Deployed on AWS Elastic Beanstalk with Docker",
				},
				Technologies: []string{"Python", "Big Data", "AWS", "Docker", "Machine Learning"},
				Repo:         "https://github.com/Syam-1133/Amazon-Recommender-System",
			},
			{
				Name: "AI Car Self-Driving Simulation",
				Highlights: []string{
					"Neural networks evolution using genetic algorithms",
					"Self-learning cars that navigate racetrack autonomously",
					"Pure Python implementation with Pyglet",
				},
				Technologies: []string{"Python", "Pyglet", "Neural Networks", "Genetic Algorithms"},
				Repo:         "https://github.com/Syam-1133/AI-Car-Racing-Simulation",
			},
			{
				Name: "Traffic Monitoring System",
				Highlights: []string{
					"Real-time vehicle detection using YOLOv8",
					"Speed estimation and traffic flow analysis",
					"Vehicle counting entering/exiting regions",
				},
				Technologies: []string{"Python", "YOLOv8", "OpenCV", "Computer Vision"},
				Repo:         "https://github.com/Syam-1133/Traffic-Monitoring-System-with-YOLO",
			},
		},
		Achievements: []string{
			"90% F1 score in drone airfield recognition",
			"85% IoU and 90% F1 score in custom object detection",
			"5cm precision in pose estimation for drones",
			"40% reduction in processing time through model optimization",
			"18% improvement in autonomous driving decision accuracy",
			"Leading 20+ member engineering team",
			"700+ problems solved on HackerRank (5-star rating)",
		},
	}
}
