// Package local implements the keyword-driven responder used when no
// completion credential is configured. It maps visitor text to one of a fixed
// set of topic categories via case-insensitive substring tests and returns a
// pre-written answer for the first category that matches.
package local

import (
	"context"
	"strings"
	"time"

	"github.com/syam1133/portfolio-assistant/internal/model/chat"
)

// DefaultThinkingDelay preserves the widget's "thinking" affordance so local
// answers do not appear instantaneous.
const DefaultThinkingDelay = 500 * time.Millisecond

// Responder answers from the canned category table. It is stateless and
// deterministic; the only failure path is context cancellation during the
// thinking delay.
type Responder struct {
	delay time.Duration
}

// New returns a local responder pausing for delay before each answer. A
// non-positive delay disables the pause.
func New(delay time.Duration) *Responder {
	return &Responder{delay: delay}
}

// Respond classifies query against the category table. History is ignored:
// every canned answer is self-contained.
func (r *Responder) Respond(ctx context.Context, _ []chat.Message, query string) (string, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return classify(query), nil
}

// classify returns the canned answer for the first category whose trigger set
// matches query, or the fallback answer. Category order is significant:
// first match wins.
func classify(query string) string {
	normalized := strings.ToLower(query)

	for _, c := range categories {
		for _, trigger := range c.triggers {
			if strings.Contains(normalized, trigger) {
				return c.answer
			}
		}
	}

	return fallbackAnswer
}

type category struct {
	name     string
	triggers []string
	answer   string
}

// categories is checked in order; triggers must be lowercase. The greeting
// category stays last because its short triggers ("hi") match inside many
// ordinary words.
var categories = []category{
	{
		name:     "education",
		triggers: []string{"education", "degree", "study", "university"},
		answer: "Syam's currently working on his Master's in Computer Science at Governors State University in Chicago! " +
			"He's diving deep into AI Foundations, Advanced Operating Systems, Reinforcement Learning, and Algorithms - pretty cool stuff! " +
			"He'll be wrapping up in May 2026.",
	},
	{
		name:     "experience",
		triggers: []string{"experience", "work", "job"},
		answer: "Oh, Syam's got quite the journey! He's been in tech for 5+ years now.\n\n" +
			"Right now he's leading the Drone Engineering Club at GSU with 20+ students. " +
			"Before that, he was doing some amazing work as an ML Engineer at Medha Servo Drives - " +
			"training computer vision models for drone navigation (hit 90% F1 score!). " +
			"He also worked on cutting-edge Optical Flow models at Updater Services and spent time at Alstom working on train control systems.\n\n" +
			"Some cool wins: 5cm precision in pose estimation, 40% faster processing times, and consistently hitting 90%+ accuracy rates. " +
			"The guy knows his stuff!",
	},
	{
		name:     "skills",
		triggers: []string{"skill", "technology", "tech", "tools"},
		answer: "Syam's tech stack is pretty impressive! He's fluent in Python, C, C++, Java, and SQL.\n\n" +
			"For AI/ML, he works with PyTorch, TensorFlow, OpenCV, YOLOv8, and LangChain. " +
			"He's especially strong in Computer Vision, Deep Learning, and Autonomous Systems - that's where he really shines!\n\n" +
			"He's also comfortable with the whole DevOps side: Docker, AWS, GCP, Git, MLflow, you name it. " +
			"Basically, if it's cutting-edge AI tech, there's a good chance he's worked with it!",
	},
	{
		name:     "certifications",
		triggers: []string{"certif", "certificate"},
		answer: "Yep, Syam's got some solid certifications under his belt! " +
			"He's completed the Machine Learning Specialization, Deep Learning Specialization, Computer Vision with OpenCV, " +
			"and he's a certified TensorFlow Developer. He takes learning pretty seriously!",
	},
	{
		name:     "projects",
		triggers: []string{"project"},
		answer: "Oh man, Syam's projects are so cool! Here are some highlights:\n\n" +
			"- Autonomous Driving Agent - taught an AI to make smart driving decisions in traffic (18% better than baseline!)\n" +
			"- AI Chatbot Platform - a smart document Q&A system with RAG, LangChain, and FAISS\n" +
			"- Math Gesture Solver - draw math problems in the air and get instant solutions (under 100ms!)\n" +
			"- Amazon Recommender - analyzed 7M+ reviews to recommend products you'll actually like\n" +
			"- Self-Driving Car Sim - cars that teach themselves to race using genetic algorithms\n" +
			"- Traffic Monitor - real-time vehicle tracking and speed detection with YOLOv8\n\n" +
			"All the code's on his GitHub if you want to check them out!",
	},
	{
		name:     "achievements",
		triggers: []string{"achievement", "accomplish"},
		answer: "Syam's accomplished some pretty awesome stuff! He hit 90% F1 score on drone airfield recognition (that's really hard!), " +
			"got pose estimation down to 5cm precision, and made his models 40% faster.\n\n" +
			"He's also crushing it at leadership - managing 20+ students in the Drone Club. " +
			"Oh, and he's a 5-star HackerRank coder with 700+ problems solved. " +
			"Basically, he's the real deal when it comes to AI and robotics!",
	},
	{
		name:     "contact",
		triggers: []string{"contact", "reach", "email", "hire"},
		answer: "Want to get in touch with Syam? Just scroll down to the Contact section below! " +
			"You can also find him on LinkedIn and GitHub - all the links are in the footer. " +
			"He's always open to interesting conversations and opportunities!",
	},
	{
		name:     "drones",
		triggers: []string{"drone", "robot", "autonomous"},
		answer: "Drones and autonomous systems? That's Syam's sweet spot! " +
			"He's leading the Drone Engineering Club at GSU, building gesture-controlled drones with MediaPipe (yep, control drones with your hands!), " +
			"and creating navigation systems with YOLOv8 and Intel RealSense.\n\n" +
			"His airfield recognition models hit 90% F1 score, and he's got pose estimation dialed in to 5cm precision. " +
			"Plus, he built an autonomous driving agent that makes tactical decisions in traffic. Pretty futuristic stuff!",
	},
	{
		name:     "vision",
		triggers: []string{"computer vision", "yolo", "opencv"},
		answer: "Computer Vision is where Syam really gets to flex! " +
			"He's built YOLOv8 detection systems with 85% IoU and 90% F1 scores, real-time traffic monitoring that tracks vehicles on the fly, " +
			"and hand gesture recognition systems.\n\n" +
			"He's also done some cutting-edge work with Optical Flow using Transformers and pose estimation (crazy accurate at 5cm!). " +
			"His toolbox? OpenCV, YOLOv8, PyTorch, TensorFlow - all the good stuff!",
	},
	{
		name:     "greeting",
		triggers: []string{"hello", "hi", "hey"},
		answer: "Hey there! I'm here to chat about Syam and all the cool AI stuff he's working on!\n\n" +
			"I can tell you about:\n" +
			"- His awesome projects (AI cars, gesture recognition, drones!)\n" +
			"- His 5+ years of ML/AI experience\n" +
			"- Technical skills (he's got quite the arsenal!)\n" +
			"- Education and achievements\n" +
			"- Or anything else you're curious about!\n\n" +
			"What would you like to know?",
	},
}

// fallbackAnswer is returned verbatim when no category matches.
const fallbackAnswer = "Hmm, I'm not quite sure about that one! But I'd love to help you learn about Syam. Try asking me:\n" +
	"- 'What projects has he built?'\n" +
	"- 'Tell me about his experience'\n" +
	"- 'What's he good at?'\n" +
	"- 'What are his achievements?'\n\n" +
	"Or just ask me anything about his AI and computer vision work!"
