// Package produto holds the Produto entity and its CRUD service.
package produto
