package analysis

import (
	"fmt"

	"github.com/ayush/bemestar-report/internal/models"
)

const promptTemplate = `Aja como um Consultor de Bem-Estar e Produtividade da Clínica SENAI. Analise os dados do usuário a seguir e gere um relatório profissional em português com 3 seções principais.
Use títulos de Markdown (##) para as seções e listas com bullet points (-) para os itens. Mantenha um tom motivacional e profissional.

## Análise (Pontos Fortes e de Atenção)
- Resumo do perfil atual.
- Destaque o impacto do sono, estresse e exercício na produtividade.

## Recomendações Personalizadas
- 3 a 5 sugestões práticas e específicas baseadas nos dados fornecidos (Ex: Se dorme pouco e está estressado, sugira meditação antes de dormir).

## Plano de Ação de 7 Dias (3 metas SMART)
- Crie 3 metas de curto prazo (7 dias) que sejam Específicas, Mensuráveis, Alcançáveis, Relevantes e Temporais.

Dados do Usuário:
- Nome: %s
- Média de Sono: %s horas
- Qualidade do Sono: %s
- Copos de Água por Dia: %s
- Frequência de Exercício: %s dias/semana
- Nível de Estresse: %s
- Período de Maior Energia: %s
`

// BuildPrompt renders the instruction sent to the model for one
// questionnaire. Blank answers are left blank.
func BuildPrompt(in models.UserInput) string {
	return fmt.Sprintf(promptTemplate,
		in.Name,
		in.SleepHours,
		in.SleepQuality,
		in.WaterGlasses,
		in.ExerciseFrequency,
		in.StressLevel,
		in.PeakEnergyPeriod,
	)
}
