package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServeSwagger returns the API description, byte-identical on every call.
func ServeSwagger(c *gin.Context) {
	c.Header("Content-Type", "text/plain")
	c.String(http.StatusOK, swaggerYAML)
}

const swaggerYAML = `openapi: "3.0.0"
info:
  title: "E-commerce API"
  version: "1.0.0"
paths:
  /customers:
    post:
      summary: "Create a new customer"
      security:
        - bearerAuth: []
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                email:
                  type: string
                phone_number:
                  type: string
      responses:
        '201':
          description: "Customer created"
  /customers/{customer_id}:
    get:
      summary: "Get customer by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "customer_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '200':
          description: "Customer details"
    put:
      summary: "Update customer by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "customer_id"
          in: "path"
          required: true
          schema:
            type: integer
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                email:
                  type: string
                phone_number:
                  type: string
      responses:
        '200':
          description: "Customer updated"
    delete:
      summary: "Delete customer by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "customer_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '204':
          description: "Customer deleted"
  /customers/{customer_id}/accounts:
    post:
      summary: "Create a new customer account"
      security:
        - bearerAuth: []
      parameters:
        - name: "customer_id"
          in: "path"
          required: true
          schema:
            type: integer
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                username:
                  type: string
                password:
                  type: string
      responses:
        '201':
          description: "Customer account created"
  /customers/accounts/{account_id}:
    get:
      summary: "Get customer account by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "account_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '200':
          description: "Customer account details"
    put:
      summary: "Update customer account by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "account_id"
          in: "path"
          required: true
          schema:
            type: integer
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                username:
                  type: string
                password:
                  type: string
      responses:
        '200':
          description: "Customer account updated"
    delete:
      summary: "Delete customer account by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "account_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '204':
          description: "Customer account deleted"
  /products:
    post:
      summary: "Create a new product"
      security:
        - bearerAuth: []
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                price:
                  type: number
      responses:
        '201':
          description: "Product created"
    get:
      summary: "List all products"
      responses:
        '200':
          description: "A list of products"
          content:
            application/json:
              schema:
                type: array
                items:
                  type: object
                  properties:
                    id:
                      type: integer
                    name:
                      type: string
                    price:
                      type: number
  /products/{product_id}:
    get:
      summary: "Get product by ID"
      parameters:
        - name: "product_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '200':
          description: "Product details"
    put:
      summary: "Update product by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "product_id"
          in: "path"
          required: true
          schema:
            type: integer
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                price:
                  type: number
      responses:
        '200':
          description: "Product updated"
    delete:
      summary: "Delete product by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "product_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '204':
          description: "Product deleted"
  /orders/{customer_id}:
    post:
      summary: "Place a new order for a customer"
      security:
        - bearerAuth: []
      parameters:
        - name: "customer_id"
          in: "path"
          required: true
          schema:
            type: integer
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              properties:
                items:
                  type: array
                  items:
                    type: object
                    properties:
                      product_id:
                        type: integer
                      quantity:
                        type: integer
      responses:
        '201':
          description: "Order placed"
  /orders/{order_id}:
    get:
      summary: "Get order by ID"
      security:
        - bearerAuth: []
      parameters:
        - name: "order_id"
          in: "path"
          required: true
          schema:
            type: integer
      responses:
        '200':
          description: "Order details"
  /swagger.yaml:
    get:
      summary: "This API description"
      responses:
        '200':
          description: "OpenAPI document as plain text"
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
      bearerFormat: JWT
`
