package renderer

// Shared vertex shader: geometry arrives already in clip space, so vertices
// pass straight through with their attributes.
const vaneVertSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	gl_Position = vec4(aPos, 1.0);
	vNormal = aNormal;
	vTexCoord = aTexCoord;
}
`

// Flat-shaded interiors, tinted by how much the face points at the viewer.
const interiorFragSrc = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

out vec4 FragColor;

void main() {
	float facing = clamp(vNormal.z, 0.0, 1.0);
	vec3 color = mix(vec3(0.30, 0.38, 0.64), vec3(0.55, 0.65, 0.90), facing);
	FragColor = vec4(color, 1.0);
}
`

// Textured interiors: plain sample, same facing tint applied.
const texturedFragSrc = `
#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D vaneTexture;

out vec4 FragColor;

void main() {
	float facing = 0.6 + 0.4 * clamp(vNormal.z, 0.0, 1.0);
	FragColor = vec4(texture(vaneTexture, vTexCoord).rgb * facing, 1.0);
}
`

// Borders: solid dark lines.
const borderFragSrc = `
#version 410 core

out vec4 FragColor;

void main() {
	FragColor = vec4(0.1, 0.1, 0.1, 1.0);
}
`
