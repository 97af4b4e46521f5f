package database

// Migration 1: Table des logs de combat téléversés
// Seul le texte brut est stocké : l'analyse est recalculée à la demande,
// les séquences dérivées ne sont jamais persistées.
const createEncountersTable = `
CREATE TABLE IF NOT EXISTS encounters (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    name VARCHAR(255) NOT NULL,
    raw_text TEXT NOT NULL,
    line_count INTEGER NOT NULL DEFAULT 0,
    duration DOUBLE PRECISION NOT NULL DEFAULT 0,

    uploaded_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);`

// Migration 2: Index de listing par utilisateur
const createEncountersIndexes = `
CREATE INDEX IF NOT EXISTS idx_encounters_user_uploaded
    ON encounters (user_id, uploaded_at DESC);`
