package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// defaultCategory is one of the categories installed on first run.
type defaultCategory struct {
	name        string
	description string
	color       string
	id          int64
	kind        int
}

// The fixed ids matter: historical exports and the delete-guard tests rely
// on 1-3 being income and 4-8 expense.
var defaultCategories = []defaultCategory{
	{id: 1, name: "Salário", description: "Rendimentos do trabalho principal", kind: 1, color: "#28A745"},
	{id: 2, name: "Freelance", description: "Trabalhos extras e projetos", kind: 1, color: "#17A2B8"},
	{id: 3, name: "Investimentos", description: "Rendimentos de aplicações financeiras", kind: 1, color: "#FFC107"},
	{id: 4, name: "Alimentação", description: "Gastos com comida e refeições", kind: 2, color: "#DC3545"},
	{id: 5, name: "Transporte", description: "Combustível, transporte público, etc.", kind: 2, color: "#6F42C1"},
	{id: 6, name: "Moradia", description: "Aluguel, contas de casa, etc.", kind: 2, color: "#FD7E14"},
	{id: 7, name: "Lazer", description: "Entretenimento e diversão", kind: 2, color: "#E83E8C"},
	{id: 8, name: "Saúde", description: "Consultas médicas, medicamentos, etc.", kind: 2, color: "#20C997"},
}

// seedDefaultCategories installs the default category set when the table
// is empty. A database that already has categories, even only inactive
// ones, is left alone.
func seedDefaultCategories(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, c := range defaultCategories {
		_, err := tx.Exec(`
			INSERT INTO categories (id, name, description, kind, color, created_at, active)
			VALUES (?, ?, ?, ?, ?, ?, 1)`,
			c.id, c.name, c.description, c.kind, c.color, now)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.name, err)
		}
	}
	return nil
}
