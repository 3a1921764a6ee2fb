package schema

// Shared category lists. These mirror the institution's standard
// classifications and are reused by the enum constraints below and by
// the synthetic generator.
var (
	Modalidades = []string{"Presencial", "EAD", "Semipresencial"}

	Generos         = []string{"Masculino", "Feminino"}
	GenerosExtensao = []string{"Masculino", "Feminino", "Outro"}

	TiposNecessidade = []string{"Auditiva", "Visual", "Física", "Intelectual", "Múltipla"}

	NiveisCurso = []string{"Técnico", "Graduação", "Pós-graduação"}

	ProgramasAssistencia = []string{
		"Auxílio Alimentação",
		"Auxílio Transporte",
		"Auxílio Moradia",
		"Auxílio Didático",
		"Bolsa Monitoria",
		"Bolsa Iniciação Científica",
	}

	CategoriasOrcamento = []string{
		"Pessoal e Encargos Sociais",
		"Custeio",
		"Investimentos",
		"Manutenção",
		"Equipamentos",
		"Obras",
	}

	TiposPublicacao = []string{
		"Artigos",
		"Capítulos de Livros",
		"Trabalhos em Eventos",
		"Livros",
		"Patentes",
	}

	TiposManifestacao = []string{"Reclamação", "Sugestão", "Elogio", "Denúncia", "Solicitação"}

	StatusManifestacao = []string{"Aberta", "Em Andamento", "Concluída", "Arquivada"}

	CategoriasServidor = []string{"Docente", "Técnico Administrativo"}
)

// moduleDescriptors declares the nine dashboard modules. Column names
// are exact and case-sensitive: they must match the spreadsheet header
// row verbatim.
func moduleDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:      "ensino",
			FileName:  "dados_ensino.xlsx",
			SheetName: "Dados_Ensino",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "campus", Type: TypeText},
				{Name: "curso", Type: TypeText},
				{Name: "modalidade", Type: TypeEnum, Allowed: Modalidades},
				{Name: "matriculados", Type: TypeInteger, NonNegative: true},
				{Name: "formados", Type: TypeInteger, NonNegative: true},
				{Name: "desistentes", Type: TypeInteger, NonNegative: true},
				{Name: "transferidos", Type: TypeInteger, NonNegative: true},
			},
		},
		{
			Name:      "extensao",
			FileName:  "dados_extensao.xlsx",
			SheetName: "Sheet1",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "unidade", Type: TypeText},
				{Name: "curso", Type: TypeText},
				{Name: "modalidade", Type: TypeEnum, Allowed: Modalidades},
				{Name: "genero", Type: TypeEnum, Allowed: GenerosExtensao},
				{Name: "estagios_concluidos", Type: TypeInteger, NonNegative: true},
				{Name: "pne_ingressantes", Type: TypeInteger, NonNegative: true},
				{Name: "tipo_necessidade", Type: TypeEnum, Allowed: TiposNecessidade},
			},
		},
		{
			Name:      "pesquisa",
			FileName:  "dados_pesquisa.xlsx",
			SheetName: "Dados_Pesquisa",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "tipo_publicacao", Type: TypeEnum, Allowed: TiposPublicacao},
				{Name: "quantidade", Type: TypeInteger, NonNegative: true},
				{Name: "area_conhecimento", Type: TypeText},
			},
			Optional: []Column{
				{Name: "unidade", Type: TypeText},
				{Name: "palavras_chave", Type: TypeText},
				{Name: "autor_principal", Type: TypeText},
			},
		},
		{
			Name:      "assistencia",
			FileName:  "dados_assistencia.xlsx",
			SheetName: "Dados_Assistencia",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "campus", Type: TypeText},
				{Name: "auxilio_tipo", Type: TypeEnum, Allowed: ProgramasAssistencia},
				{Name: "beneficiarios", Type: TypeInteger, NonNegative: true},
				{Name: "valor_total", Type: TypeDecimal, NonNegative: true},
			},
			Optional: []Column{
				{Name: "mes", Type: TypeInteger, NonNegative: true},
				{Name: "nivel_curso", Type: TypeEnum, Allowed: NiveisCurso},
				{Name: "genero", Type: TypeEnum, Allowed: Generos},
			},
		},
		{
			Name:      "orcamento",
			FileName:  "dados_orcamento.xlsx",
			SheetName: "Sheet1",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "categoria", Type: TypeEnum, Allowed: CategoriasOrcamento},
				{Name: "valor_orcado", Type: TypeDecimal, NonNegative: true},
				{Name: "valor_executado", Type: TypeDecimal, NonNegative: true},
			},
			Optional: []Column{
				{Name: "unidade", Type: TypeText},
			},
		},
		{
			Name:      "servidores",
			FileName:  "dados_servidores.xlsx",
			SheetName: "Sheet1",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "campus", Type: TypeText},
				{Name: "categoria", Type: TypeEnum, Allowed: CategoriasServidor},
				{Name: "quantidade", Type: TypeInteger, NonNegative: true},
				{Name: "genero", Type: TypeEnum, Allowed: Generos},
			},
		},
		{
			Name:      "ouvidoria",
			FileName:  "dados_ouvidoria.xlsx",
			SheetName: "Sheet1",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "tipo_manifestacao", Type: TypeEnum, Allowed: TiposManifestacao},
				{Name: "quantidade", Type: TypeInteger, NonNegative: true},
				{Name: "status", Type: TypeEnum, Allowed: StatusManifestacao},
			},
			Optional: []Column{
				{Name: "unidade", Type: TypeText},
				{Name: "mes", Type: TypeInteger, NonNegative: true},
			},
		},
		{
			Name:      "auditoria",
			FileName:  "dados_auditoria.xlsx",
			SheetName: "Sheet1",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "tipo_auditoria", Type: TypeText},
				{Name: "numero_auditorias", Type: TypeInteger, NonNegative: true},
				{Name: "recomendacoes", Type: TypeInteger, NonNegative: true},
			},
			Optional: []Column{
				{Name: "recomendacoes_atendidas", Type: TypeInteger, NonNegative: true},
				{Name: "percentual_atendimento", Type: TypeDecimal, Percent: true},
			},
		},
		{
			Name:      "mundo_trabalho",
			FileName:  "dados_mundo_trabalho.xlsx",
			SheetName: "Sheet1",
			Required: []Column{
				{Name: "ano", Type: TypeInteger, NonNegative: true},
				{Name: "campus", Type: TypeText},
				{Name: "curso", Type: TypeText},
				{Name: "empregabilidade", Type: TypeDecimal, Percent: true},
				{Name: "salario_medio", Type: TypeDecimal, NonNegative: true},
			},
			Optional: []Column{
				{Name: "setor_atividade", Type: TypeText},
			},
		},
	}
}
