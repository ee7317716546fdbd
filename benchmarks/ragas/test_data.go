// ABOUTME: Benchmark scenario definitions for retrieval quality evaluation
// ABOUTME: Seed documents, questions and ground truth per scenario
package ragas

// SeedDocument is study material indexed before a scenario's question runs.
type SeedDocument struct {
	Name     string
	FileType string
	Text     string
}

// GroundTruth describes what a correct run must (and must not) produce.
type GroundTruth struct {
	ExpectedInResponse   []string
	ForbiddenInResponse  []string
	ExpectedContextItems []string
}

// TestScenario is one benchmark case: documents in, question, expectations out.
type TestScenario struct {
	ID          string
	Name        string
	Description string
	Documents   []SeedDocument
	Question    string
	GroundTruth GroundTruth
}

// TestResult holds the scores for one executed scenario.
type TestResult struct {
	TestID             string                 `json:"test_id"`
	TestName           string                 `json:"test_name"`
	FaithfulnessScore  float64                `json:"faithfulness_score"`
	ContextRecallScore float64                `json:"context_recall_score"`
	OverallScore       float64                `json:"overall_score"`
	Status             string                 `json:"status"`
	Details            map[string]interface{} `json:"details"`
}

// GetAllTests returns every benchmark scenario.
func GetAllTests() []TestScenario {
	return []TestScenario{
		{
			ID:          "ret_1",
			Name:        "Single document retrieval",
			Description: "A direct question answered by one ingested document",
			Documents: []SeedDocument{
				{
					Name:     "biologia.md",
					FileType: "md",
					Text: "A fotossíntese é o processo pelo qual plantas convertem luz solar, " +
						"água e gás carbônico em glicose e oxigênio. Ocorre nos cloroplastos, " +
						"organelas ricas em clorofila presentes nas células vegetais.",
				},
			},
			Question: "O que é fotossíntese e onde ela ocorre?",
			GroundTruth: GroundTruth{
				ExpectedInResponse:   []string{"fotossíntese", "cloroplastos"},
				ExpectedContextItems: []string{"glicose", "clorofila"},
			},
		},
		{
			ID:          "ret_2",
			Name:        "Distractor rejection",
			Description: "Unrelated documents must not leak into the context",
			Documents: []SeedDocument{
				{
					Name:     "historia.md",
					FileType: "md",
					Text: "A Era Vargas foi o período de quinze anos em que Getúlio Vargas governou " +
						"o Brasil, de 1930 a 1945, marcado pelo Estado Novo e pela criação da CLT, " +
						"a Consolidação das Leis do Trabalho.",
				},
				{
					Name:     "quimica.md",
					FileType: "md",
					Text: "A tabela periódica organiza os elementos por número atômico crescente. " +
						"Os gases nobres ocupam o grupo 18 e raramente formam compostos.",
				},
			},
			Question: "Quando Getúlio Vargas governou o Brasil?",
			GroundTruth: GroundTruth{
				ExpectedInResponse:   []string{"Vargas", "1930"},
				ForbiddenInResponse:  []string{"tabela periódica", "gases nobres"},
				ExpectedContextItems: []string{"Estado Novo"},
			},
		},
		{
			ID:          "ret_3",
			Name:        "Multi-chunk assembly",
			Description: "Context assembled across chunks of a longer document",
			Documents: []SeedDocument{
				{
					Name:     "modernismo.txt",
					FileType: "txt",
					Text: "A Semana de Arte Moderna de 1922 aconteceu no Theatro Municipal de São Paulo " +
						"e marcou o início do modernismo brasileiro. Participaram Mário de Andrade, " +
						"Oswald de Andrade e Anita Malfatti, entre outros artistas.\n\n" +
						"O movimento modernista buscava romper com o academicismo e valorizar a " +
						"cultura nacional. O Manifesto Antropófago de Oswald de Andrade, de 1928, " +
						"propunha devorar as influências estrangeiras para criar uma arte própria.",
				},
			},
			Question: "Quem participou da Semana de Arte Moderna de 1922?",
			GroundTruth: GroundTruth{
				ExpectedInResponse:   []string{"Semana de Arte Moderna", "Mário de Andrade"},
				ExpectedContextItems: []string{"Theatro Municipal", "Anita Malfatti"},
			},
		},
		{
			ID:          "ret_4",
			Name:        "Extracted PDF retrieval",
			Description: "Pre-extracted PDF material answers over loose notes",
			Documents: []SeedDocument{
				{
					Name:     "apostila.pdf.txt",
					FileType: "pdf",
					Text: "A Lei Áurea, assinada pela princesa Isabel em 13 de maio de 1888, " +
						"aboliu a escravidão no Brasil, o último país das Américas a fazê-lo.",
				},
				{
					Name:     "anotacoes.txt",
					FileType: "txt",
					Text:     "Anotações soltas de aula: revisar as datas importantes do século XIX.",
				},
			},
			Question: "O que foi a Lei Áurea?",
			GroundTruth: GroundTruth{
				ExpectedInResponse:   []string{"Lei Áurea", "1888"},
				ExpectedContextItems: []string{"princesa Isabel"},
			},
		},
	}
}
