package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uPointSizeBase;
	uniform float uDistance;
	vec4 viewPosition;
	out lowp float vShade;

	void main(void) {
		viewPosition = uModelViewMatrix * aVertexPosition;
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = clamp(uPointSizeBase / length(viewPosition), 1.0, uPointSizeBase);

		// Dim the far side of the sphere
		vShade = length(viewPosition.xyz) < uDistance ? 1.0 : 0.4;
	}
`

const fsSource = `#version 300 es
	uniform lowp vec3 uColor;
	uniform lowp float uAlpha;
	in lowp float vShade;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vec4(uColor * vShade, uAlpha);
	}
`
