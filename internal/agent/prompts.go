package agent

import (
	"fmt"
	"strings"
)

const researcherSystemPrompt = "You are a world-class travel researcher. " +
	"Given a travel destination and the number of days the user wants to travel for, " +
	"produce concise research notes on the most relevant activities and accommodations. " +
	"Remember: the quality of the results is important."

const plannerSystemPrompt = "You are a senior travel planner. " +
	"Given a travel destination, the number of days the user wants to travel for, and research notes, " +
	"generate a draft itinerary that includes suggested activities and accommodations. " +
	"Ensure the itinerary is well-structured, informative, and engaging, with one section per day. " +
	"Never make up facts or plagiarize. Always provide proper attribution."

// #region prompts

func researcherPrompt(destination string, numDays int) string {
	var b strings.Builder
	b.WriteString(researcherSystemPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Destination: %s\n", destination)
	fmt.Fprintf(&b, "Trip length: %d days\n", numDays)
	b.WriteString("List the top activities, sights, and accommodation options as short bullet points.\n")
	return b.String()
}

func plannerPrompt(destination string, numDays int, notes string) string {
	var b strings.Builder
	b.WriteString(plannerSystemPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Plan a %d-day itinerary for %s.\n", numDays, destination)
	b.WriteString("Label each day as \"Day N\" and include where to stay.\n")
	if strings.TrimSpace(notes) != "" {
		b.WriteString("\nResearch notes:\n")
		b.WriteString(notes)
		b.WriteString("\n")
	}
	return b.String()
}

// #endregion prompts
