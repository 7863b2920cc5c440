package prompts

import (
	"fmt"
	"strings"
)

// QuestionsCount — сколько вопросов запрашиваем у модели за интервью
const QuestionsCount = 5

// QuestionsPrompt создает промпт для генерации вопросов по тех-стеку
func QuestionsPrompt(techStack []string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf(
		"Generate %d short and fundamental technical interview questions for a candidate with skills in %s. ",
		QuestionsCount, strings.Join(techStack, ", ")))
	prompt.WriteString("Always try to give different types of questions. ")
	prompt.WriteString("Questions should test basic knowledge in that field. ")
	prompt.WriteString("Do not ask multiple choice questions and do not give any other extra information. Only ask a question. ")
	prompt.WriteString("Questions should be short, answerable in 2-4 words. ")
	prompt.WriteString("Return one question per line. ")
	prompt.WriteString("Always ask different questions from your previously asked on that tech stack.")

	return prompt.String()
}

// EvaluationPrompt создает промпт для оценки ответа кандидата
func EvaluationPrompt(question, answer string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Evaluate the following answer to the question: '%s'. ", question))
	prompt.WriteString(fmt.Sprintf("Answer: '%s'. ", answer))
	prompt.WriteString("Score this answer on a scale of 1 to 10, and return only the score without any additional text.")

	return prompt.String()
}
