package faq

import "encoding/json"

// DefaultItems is the built-in help-center catalog.
func DefaultItems() []Item {
	return []Item{
		{
			ID:       1,
			Category: "General Questions",
			Question: "What is Fundezy.io?",
			Answer:   TextAnswer("Fundezy.io is a platform designed to help individuals and teams access funding opportunities quickly and efficiently."),
		},
		{
			ID:       2,
			Category: "General Questions",
			Question: "Who can use Fundezy.io?",
			Answer:   TextAnswer("Anyone looking for funding opportunities, including students, researchers, and entrepreneurs, can use Fundezy.io."),
		},
		{
			ID:       4,
			Category: "Account and Verification",
			Question: "How do I create an account?",
			Answer:   TextAnswer("Simply sign up using your email address and follow the instructions to verify your account."),
		},
		{
			ID:       5,
			Category: "Account and Verification",
			Question: "Do I need to verify my identity?",
			Answer:   TextAnswer("Yes, identity verification is required to ensure a secure and trustworthy platform."),
		},
		{
			ID:       10,
			Category: "Challenge Overview",
			Question: "What is the Fundezy Challenge?",
			Answer:   TextAnswer("The Fundezy Challenge is a three-step evaluation process designed to assess and fund traders. Participants must meet profit targets and adhere to strict risk management rules to qualify for a funded account."),
		},
		{
			ID:       11,
			Category: "Challenge Overview",
			Question: "What are the steps in the Fundezy Challenge?",
			Answer: RichAnswer(json.RawMessage(`{
				"intro": "The Fundezy Challenge consists of three steps:",
				"steps": [
					"Evaluation – Trade for 30 days, reach a 10% profit target, and follow risk management rules (maximum 5% daily loss and 10% total loss).",
					"Verification – Trade for 60 days, reach a 5% profit target, and demonstrate consistent trading while following the same risk management rules.",
					"Funded Account – Start trading with Fundezy's capital, keep up to 80% of profits, and scale up to $200,000."
				]
			}`)),
		},
		{
			ID:       12,
			Category: "Rules and Requirements",
			Question: "What happens if I fail to meet the profit target in Step 1 or Step 2?",
			Answer:   TextAnswer("If you fail to meet the profit target within the specified time, you will not pass the challenge. You can restart the challenge by reapplying."),
		},
		{
			ID:       13,
			Category: "Rules and Requirements",
			Question: "What happens if I exceed the 5% daily loss or 10% total loss limits?",
			Answer:   TextAnswer("Exceeding either the daily or total loss limits will result in immediate disqualification from the challenge."),
		},
		{
			ID:       14,
			Category: "Rules and Requirements",
			Question: "Can I use any trading strategy?",
			Answer:   TextAnswer("Yes, you are free to use any trading strategy as long as it adheres to the risk management rules."),
		},
		{
			ID:       15,
			Category: "Trading and Profit Details",
			Question: "How is the profit target calculated?",
			Answer:   TextAnswer("The profit target is calculated based on the initial account balance provided at the start of the challenge."),
		},
		{
			ID:       16,
			Category: "Trading and Profit Details",
			Question: "How is the profit split calculated in the funded account phase?",
			Answer:   TextAnswer("In the funded account phase, you will keep up to 80% of the profits you generate. The exact percentage will depend on the agreement with Fundezy."),
		},
		{
			ID:       17,
			Category: "Trading and Profit Details",
			Question: "Can I scale up to $200,000 immediately after Step 3?",
			Answer:   TextAnswer("Scaling up to $200,000 is a gradual process based on your performance and consistency. You will need to meet specific milestones to increase your account size."),
		},
		{
			ID:       18,
			Category: "Support and Assistance",
			Question: "Who can I contact for support?",
			Answer:   TextAnswer("You can reach out to our support team via email for assistance."),
		},
		{
			ID:       19,
			Category: "Support and Assistance",
			Question: "Where can I find more information?",
			Answer:   TextAnswer("Visit our Help Center or FAQ section for detailed guides and answers."),
		},
		{
			ID:       20,
			Category: "Other Questions",
			Question: "Is Fundezy.io available globally?",
			Answer:   TextAnswer("Yes, Fundezy.io is accessible to users worldwide."),
		},
		{
			ID:       21,
			Category: "Other Questions",
			Question: "Can I withdraw funds directly?",
			Answer:   TextAnswer("Yes, once your funding is approved, you will receive instructions on how to access the funds."),
		},
		{
			ID:       22,
			Category: "Other Questions",
			Question: "Are there any restrictions on how I use the funds?",
			Answer:   TextAnswer("Some funding options may have specific terms and conditions. Please review them carefully before applying."),
		},
	}
}
