// ABOUTME: Portuguese prompt builders for the FLIPFLOPS assistant
// ABOUTME: Covers Q&A, Socratic explanation, exam generation and topic extraction
package prompts

import (
	"fmt"
	"strings"
)

// System returns the default system prompt for the assistant.
func System() string {
	return strings.TrimSpace(`
Você é um assistente educacional especializado em fornecer explicações claras e didáticas.
Suas respostas devem ser em português, com linguagem acessível e apropriada para estudantes.

Ao responder:
- Use exemplos práticos para ilustrar conceitos
- Explique termos técnicos de forma simples
- Mantenha um tom amigável e encorajador
- Adapte a complexidade ao nível do aluno
- Forneça informações precisas baseadas no contexto
`)
}

// Answer builds the prompt for a general knowledge question with retrieved
// context. The context passages themselves are attached by the generation
// client; this prompt instructs the model how to use them.
func Answer(question string) string {
	var sb strings.Builder
	sb.WriteString("Você é um assistente educacional especializado em ajudar ")
	sb.WriteString("estudantes brasileiros do ensino médio. ")
	sb.WriteString("Sua tarefa é responder à pergunta do estudante com base ")
	sb.WriteString("no contexto fornecido.\n\n")
	sb.WriteString("Pergunta do estudante:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nResponda de forma clara, precisa e educativa. Use linguagem ")
	sb.WriteString("adequada para estudantes do ensino médio. Se a resposta não ")
	sb.WriteString("estiver contida no contexto fornecido, diga que não tem ")
	sb.WriteString("informações suficientes para responder.")
	return sb.String()
}

// AnswerWithoutContext builds the prompt used when no relevant documents
// were found in the knowledge base.
func AnswerWithoutContext(question string) string {
	var sb strings.Builder
	sb.WriteString("Você é um assistente educacional especializado em ajudar ")
	sb.WriteString("estudantes brasileiros do ensino médio. ")
	sb.WriteString("Um estudante fez a seguinte pergunta, mas não temos documentos ")
	sb.WriteString("específicos em nossa base de conhecimento sobre esse tema.\n\n")
	sb.WriteString("Pergunta do estudante:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nForneça uma resposta útil, educativa e abrangente, adequada para ")
	sb.WriteString("um estudante do ensino médio brasileiro. Seja claro e preciso, ")
	sb.WriteString("e indique que esta resposta é baseada em conhecimento geral, ")
	sb.WriteString("não em documentos específicos da nossa base.")
	return sb.String()
}

// Explain builds the Socratic explanation prompt for a concept.
func Explain(concept string) string {
	var sb strings.Builder
	sb.WriteString("Você é um tutor especializado no método socrático, ajudando ")
	sb.WriteString("estudantes brasileiros do ensino médio a compreenderem conceitos ")
	sb.WriteString("através de questionamentos que estimulam o pensamento crítico.\n\n")
	sb.WriteString("Conceito a ser explicado:\n")
	sb.WriteString(concept)
	sb.WriteString("\n\nElabore uma explicação utilizando o método socrático, seguindo ")
	sb.WriteString("estas diretrizes:\n")
	sb.WriteString("1. Comece com uma breve introdução ao conceito\n")
	sb.WriteString("2. Faça perguntas que guiem o estudante a descobrir o conhecimento por si mesmo\n")
	sb.WriteString("3. Apresente exemplos relacionados à realidade brasileira e relevantes para o vestibular FUVEST\n")
	sb.WriteString("4. Desenvolva um raciocínio passo a passo\n")
	sb.WriteString("5. Conclua conectando o conceito a aplicações práticas\n\n")
	sb.WriteString("Use linguagem clara e adequada para estudantes do ensino médio ")
	sb.WriteString("brasileiro. Seu objetivo é estimular o pensamento crítico, não ")
	sb.WriteString("apenas fornecer respostas prontas.")
	return sb.String()
}

// Exam builds the multiple-choice exam generation prompt. The model is
// instructed to answer with a fenced JSON payload that the exam parser
// understands.
func Exam(topic, context string, numQuestions int) string {
	var sb strings.Builder
	sb.WriteString("Você é um educador experiente preparando questões de múltipla escolha ")
	sb.WriteString("para estudantes do ensino médio no Brasil se preparando para o vestibular FUVEST.\n\n")
	fmt.Fprintf(&sb, "Crie %d questões de múltipla escolha sobre o tema: %s\n\n", numQuestions, topic)
	sb.WriteString("Use o seguinte contexto como base para elaborar as questões:\n")
	sb.WriteString(context)
	sb.WriteString("\n\nRequisitos para as questões:\n")
	sb.WriteString("1. Cada questão deve testar a compreensão do aluno, não apenas memorização\n")
	sb.WriteString("2. Cada questão deve ter exatamente 5 alternativas (a, b, c, d, e)\n")
	sb.WriteString("3. As alternativas incorretas devem ser plausíveis\n")
	sb.WriteString("4. Inclua uma explicação do porquê a resposta correta é correta\n")
	sb.WriteString("5. Use linguagem clara e apropriada para estudantes do ensino médio\n")
	sb.WriteString("6. As questões devem ser desafiadoras mas justas\n\n")
	sb.WriteString("Responda no seguinte formato JSON para que eu possa processar facilmente:\n")
	sb.WriteString("```json\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"questions\": [\n")
	sb.WriteString("    {\n")
	sb.WriteString("      \"text\": \"Texto da pergunta\",\n")
	sb.WriteString("      \"options\": [\"Opção A\", \"Opção B\", \"Opção C\", \"Opção D\", \"Opção E\"],\n")
	sb.WriteString("      \"correct_answer\": \"a\",\n")
	sb.WriteString("      \"explanation\": \"Explicação da resposta correta\"\n")
	sb.WriteString("    }\n")
	sb.WriteString("  ]\n")
	sb.WriteString("}\n")
	sb.WriteString("```\n\n")
	sb.WriteString("Certifique-se de que o JSON esteja válido e completo.")
	return sb.String()
}

// Topics builds the topic extraction prompt over sampled document content.
func Topics(sampleContent string) string {
	var sb strings.Builder
	sb.WriteString("Você é um especialista em educação com foco no vestibular FUVEST. ")
	sb.WriteString("Com base nos trechos de documentos abaixo, identifique os principais ")
	sb.WriteString("tópicos de estudo que poderiam ser usados para gerar questões para ")
	sb.WriteString("estudantes do ensino médio.\n\n")
	sb.WriteString("Documentos:\n")
	sb.WriteString(sampleContent)
	sb.WriteString("\n\nListe entre 10 e 15 tópicos específicos encontrados nestes documentos, ")
	sb.WriteString("apropriados para questões de vestibular. Responda em formato JSON:\n")
	sb.WriteString("```json\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"topics\": [\"Tópico 1\", \"Tópico 2\"]\n")
	sb.WriteString("}\n")
	sb.WriteString("```")
	return sb.String()
}
