package view

// FAQItem вопрос и ответ на странице тарифов.
type FAQItem struct {
	Question string
	Answer   string
}

// Testimonial отзыв подписчика.
type Testimonial struct {
	Name   string
	Role   string
	Avatar string
	Quote  string
}

var faq = []FAQItem{
	{
		Question: "What's included in the Basic plan?",
		Answer:   "The Basic plan includes access to over 100 research reports, the ability to download up to 10 reports per month, basic search functionality, and email support. It's perfect for individuals who need occasional access to research materials.",
	},
	{
		Question: "How do expert consultations work?",
		Answer:   "With the Premium plan, you receive 2 hours of consultation time per month with our research experts. You can schedule these sessions through our platform, choosing from available time slots. Consultations can be conducted via video call or in-app messaging, depending on your preference.",
	},
	{
		Question: "Can I cancel my subscription at any time?",
		Answer:   "Yes, you can cancel your subscription at any time. If you cancel, you'll continue to have access to your subscription benefits until the end of your current billing period. We don't offer refunds for partial subscription periods.",
	},
	{
		Question: "Is there a free trial available?",
		Answer:   "Yes, we offer a 14-day free trial for both our Basic and Premium plans. No credit card is required to start your trial. You'll receive a reminder before your trial ends, at which point you can choose to subscribe or cancel.",
	},
	{
		Question: "What happens if I exceed my download limit?",
		Answer:   "Basic plan subscribers have a limit of 10 report downloads per month. If you reach this limit, you'll need to wait until your next billing cycle for the limit to reset, or you can upgrade to the Premium plan for unlimited downloads.",
	},
	{
		Question: "Can I switch between plans?",
		Answer:   "Yes, you can switch between the Basic and Premium plans at any time. If you upgrade, the change will take effect immediately, and you'll be charged the prorated difference. If you downgrade, the change will take effect at the start of your next billing cycle.",
	},
}

var testimonials = []Testimonial{
	{
		Name:   "Sarah Johnson",
		Role:   "Marketing Director",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=testimonial1",
		Quote:  "The Premium subscription has been invaluable for our market research. The expert consultations alone are worth the price, providing insights we couldn't get elsewhere.",
	},
	{
		Name:   "Michael Chen",
		Role:   "Investment Analyst",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=testimonial2",
		Quote:  "I've been a Basic subscriber for six months, and the quality of research reports is exceptional. It's helped me make more informed investment decisions.",
	},
	{
		Name:   "Emily Rodriguez",
		Role:   "Academic Researcher",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=testimonial3",
		Quote:  "The annual Premium subscription offers incredible value. The unlimited access to reports and expert consultations has significantly accelerated my research projects.",
	},
}
